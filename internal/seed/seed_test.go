package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/domain"
)

func TestParseRecord(t *testing.T) {
	t.Run("完整记录", func(t *testing.T) {
		ja, err := parseRecord([]string{"Engineer", "Acme", "2024-01-01", "Interview", "内推渠道投递"}, 42)
		require.NoError(t, err)

		assert.Equal(t, int64(42), ja.UserID)
		assert.Equal(t, "Engineer", ja.JobTitle)
		assert.Equal(t, "Acme", ja.Company)
		assert.Equal(t, "2024-01-01", ja.ApplicationDate.Format("2006-01-02"))
		assert.Equal(t, domain.StatusInterview, ja.Status)
		assert.Equal(t, "内推渠道投递", ja.Notes)
	})

	t.Run("status 和 notes 为空时使用默认值", func(t *testing.T) {
		ja, err := parseRecord([]string{"Engineer", "Acme", "2024-01-01", "", ""}, 42)
		require.NoError(t, err)

		assert.Equal(t, domain.StatusApplied, ja.Status)
		assert.Equal(t, "", ja.Notes)
	})

	t.Run("必填字段为空", func(t *testing.T) {
		_, err := parseRecord([]string{"", "Acme", "2024-01-01", "", ""}, 42)
		assert.Error(t, err)

		_, err = parseRecord([]string{"Engineer", "", "2024-01-01", "", ""}, 42)
		assert.Error(t, err)
	})

	t.Run("日期格式错误", func(t *testing.T) {
		_, err := parseRecord([]string{"Engineer", "Acme", "someday", "", ""}, 42)
		assert.Error(t, err)
	})

	t.Run("status 不在枚举范围内", func(t *testing.T) {
		_, err := parseRecord([]string{"Engineer", "Acme", "2024-01-01", "Ghosted", ""}, 42)
		assert.Error(t, err)
	})

	t.Run("列数不匹配", func(t *testing.T) {
		_, err := parseRecord([]string{"Engineer", "Acme"}, 42)
		assert.Error(t, err)
	})
}
