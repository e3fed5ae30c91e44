package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateEmailFromChineseName 将中文姓名转成拼音再拼上随机数字作为邮箱的本地部分
func GenerateEmailFromChineseName(chineseName string, emailDomainName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	localPart := ""

	for _, p := range pinyinArray {
		localPart += p
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		localPart += string(digits[rand.Intn(len(digits))])
	}

	return localPart + "@" + emailDomainName
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        GenerateEmailFromChineseName(fullName, emailDomainName),
		PasswordHash: string(passwordHash),
		FullName:     fullName,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var sampleJobTitles = []string{
	"后端开发工程师", "前端开发工程师", "全栈工程师", "数据分析师",
	"运维工程师", "测试工程师", "产品经理", "算法工程师",
}
var sampleCompanies = []string{
	"字节跳动", "腾讯", "阿里巴巴", "美团", "网易", "百度", "小米", "拼多多",
}
var sampleNotes = []string{
	"", "内推渠道投递", "已完成一面，等待二面通知", "官网投递，暂无回复", "HR 建议下个季度再投",
}
var statuses = []domain.JobApplicationStatus{
	domain.StatusApplied,
	domain.StatusInterview,
	domain.StatusOffer,
	domain.StatusRejected,
}

func GenerateRandomJobApplicationStatus() domain.JobApplicationStatus {
	return statuses[rand.Intn(len(statuses))]
}

func GenerateRandomJobApplication(userID int64) *domain.JobApplication {
	applicationDate := time.Now().AddDate(0, 0, -rand.Intn(90))

	return &domain.JobApplication{
		UserID:          userID,
		JobTitle:        sampleJobTitles[rand.Intn(len(sampleJobTitles))],
		Company:         sampleCompanies[rand.Intn(len(sampleCompanies))],
		ApplicationDate: domain.Date{Time: time.Date(applicationDate.Year(), applicationDate.Month(), applicationDate.Day(), 0, 0, 0, 0, time.UTC)},
		Status:          GenerateRandomJobApplicationStatus(),
		Notes:           sampleNotes[rand.Intn(len(sampleNotes))],
	}
}
