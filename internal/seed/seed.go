package seed

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/repository"
)

var expectedHeaders = []string{"jobTitle", "company", "applicationDate", "status", "notes"}

// ImportJobApplicationsFromCSV 从 CSV 文件中导入某个用户的求职申请记录。
// 表头固定为 jobTitle,company,applicationDate,status,notes，
// status 和 notes 允许为空，分别默认为 Applied 和空字符串
func ImportJobApplicationsFromCSV(r *repository.Repository, path string, userEmail string) {
	user, err := r.GetUserByEmail(userEmail)
	if err != nil {
		slog.Error("获取用户失败", "email", userEmail, "error", err)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		slog.Error("打开文件失败", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// 读取表头
	headers, err := reader.Read()
	if err != nil {
		slog.Error("读取表头失败", "error", err)
		return
	}

	if !slices.Equal(headers, expectedHeaders) {
		slog.Error("表头格式错误", "headers", headers, "expected", expectedHeaders)
		return
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			slog.Error("读取记录失败", "error", err)
			return
		}

		ja, err := parseRecord(record, user.ID)
		if err != nil {
			slog.Error("解析记录失败", "record", record, "error", err)
			continue
		}

		if err := r.CreateJobApplication(ja); err != nil {
			slog.Error("插入求职申请失败", "record", record, "error", err)
			continue
		}
		imported++
	}

	slog.Info("导入完成", "imported", imported)
}

func parseRecord(record []string, userID int64) (*domain.JobApplication, error) {
	if len(record) != len(expectedHeaders) {
		return nil, errors.New("记录的列数和表头不匹配")
	}

	jobTitle, company := record[0], record[1]
	if jobTitle == "" || company == "" {
		return nil, errors.New("jobTitle 和 company 不能为空")
	}

	applicationDate, err := domain.ParseDate(record[2])
	if err != nil {
		return nil, err
	}

	status := domain.JobApplicationStatus(record[3])
	switch status {
	case "":
		status = domain.StatusApplied
	case domain.StatusApplied, domain.StatusInterview, domain.StatusOffer, domain.StatusRejected:
	default:
		return nil, errors.New("status 不在枚举范围内")
	}

	return &domain.JobApplication{
		UserID:          userID,
		JobTitle:        jobTitle,
		Company:         company,
		ApplicationDate: applicationDate,
		Status:          status,
		Notes:           record[4],
	}, nil
}
