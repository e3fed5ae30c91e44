package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("标准日期格式", func(t *testing.T) {
		d, err := ParseDate("2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 1, d.Day())
	})

	t.Run("RFC 3339 格式只保留日期部分", func(t *testing.T) {
		d, err := ParseDate("2024-03-15T18:30:00+08:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := ParseDate("01/02/2024")
		assert.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-30"`), &parsed))
	assert.Equal(t, "2024-06-30", parsed.Format("2006-01-02"))

	assert.Error(t, json.Unmarshal([]byte(`123`), &parsed))
}

func TestApplyPatch(t *testing.T) {
	base := func() *JobApplication {
		d, _ := ParseDate("2024-01-01")
		return &JobApplication{
			ID:              1,
			UserID:          42,
			JobTitle:        "后端开发工程师",
			Company:         "Acme",
			ApplicationDate: d,
			Status:          StatusApplied,
			Notes:           "内推渠道投递",
		}
	}

	t.Run("只更新 status 时其余字段保持不变", func(t *testing.T) {
		ja := base()
		ja.ApplyPatch(JobApplicationPatch{Status: "Offer"})

		assert.Equal(t, StatusOffer, ja.Status)
		assert.Equal(t, "后端开发工程师", ja.JobTitle)
		assert.Equal(t, "Acme", ja.Company)
		assert.Equal(t, "2024-01-01", ja.ApplicationDate.Format("2006-01-02"))
		assert.Equal(t, "内推渠道投递", ja.Notes)
	})

	t.Run("空字符串和缺省字段一样表示不修改", func(t *testing.T) {
		ja := base()
		ja.ApplyPatch(JobApplicationPatch{JobTitle: "", Company: "", Notes: ""})

		assert.Equal(t, "后端开发工程师", ja.JobTitle)
		assert.Equal(t, "Acme", ja.Company)
		assert.Equal(t, "内推渠道投递", ja.Notes)
	})

	t.Run("提供的字段全部覆盖", func(t *testing.T) {
		ja := base()
		d, _ := ParseDate("2024-02-02")
		ja.ApplyPatch(JobApplicationPatch{
			JobTitle:        "测试工程师",
			Company:         "Globex",
			ApplicationDate: &d,
			Status:          "Rejected",
			Notes:           "已收到拒信",
		})

		assert.Equal(t, "测试工程师", ja.JobTitle)
		assert.Equal(t, "Globex", ja.Company)
		assert.Equal(t, "2024-02-02", ja.ApplicationDate.Format("2006-01-02"))
		assert.Equal(t, StatusRejected, ja.Status)
		assert.Equal(t, "已收到拒信", ja.Notes)
	})

	t.Run("所属用户不会被修改", func(t *testing.T) {
		ja := base()
		ja.ApplyPatch(JobApplicationPatch{Status: "Interview"})
		assert.Equal(t, int64(42), ja.UserID)
	})
}

func TestJobApplicationJSONShape(t *testing.T) {
	d, _ := ParseDate("2024-01-01")
	ja := &JobApplication{
		ID:              7,
		UserID:          42,
		JobTitle:        "Engineer",
		Company:         "Acme",
		ApplicationDate: d,
		Status:          StatusApplied,
	}

	data, err := json.Marshal(ja)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, float64(42), m["user"])
	assert.Equal(t, "Engineer", m["jobTitle"])
	assert.Equal(t, "Acme", m["company"])
	assert.Equal(t, "2024-01-01", m["applicationDate"])
	assert.Equal(t, "Applied", m["status"])
	assert.Equal(t, "", m["notes"])
}
