package domain

import (
	"fmt"
	"time"
)

type JobApplicationStatus string

const (
	StatusApplied   JobApplicationStatus = "Applied"
	StatusInterview JobApplicationStatus = "Interview"
	StatusOffer     JobApplicationStatus = "Offer"
	StatusRejected  JobApplicationStatus = "Rejected"
)

type JobApplication struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user"`
	JobTitle        string               `json:"jobTitle"`
	Company         string               `json:"company"`
	ApplicationDate Date                 `json:"applicationDate"`
	Status          JobApplicationStatus `json:"status"`
	Notes           string               `json:"notes"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// JobApplicationPatch 表示一次部分更新请求中客户端提供的字段。
// 沿用前端的约定：空字符串和缺省字段一样表示「不修改」。
type JobApplicationPatch struct {
	JobTitle        string
	Company         string
	ApplicationDate *Date
	Status          string
	Notes           string
}

func (ja *JobApplication) ApplyPatch(patch JobApplicationPatch) {
	if patch.JobTitle != "" {
		ja.JobTitle = patch.JobTitle
	}
	if patch.Company != "" {
		ja.Company = patch.Company
	}
	if patch.ApplicationDate != nil {
		ja.ApplicationDate = *patch.ApplicationDate
	}
	if patch.Status != "" {
		ja.Status = JobApplicationStatus(patch.Status)
	}
	if patch.Notes != "" {
		ja.Notes = patch.Notes
	}
}

const dateLayout = "2006-01-02"

// Date 表示一个不带时刻的日历日期，JSON 格式为 YYYY-MM-DD
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// 兼容带时刻的 RFC 3339 格式，只保留日期部分
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return Date{}, fmt.Errorf("日期 %q 的格式错误，应为 YYYY-MM-DD", s)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("日期 %s 的格式错误，应为 YYYY-MM-DD", string(data))
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
