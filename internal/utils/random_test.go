package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomOTP(t *testing.T) {
	otpPattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, otpPattern, GenerateRandomOTP())
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)
}

func TestGenerateEmailFromChineseName(t *testing.T) {
	email := GenerateEmailFromChineseName("张伟", "example.com")

	assert.True(t, strings.HasSuffix(email, "@example.com"))
	assert.True(t, strings.HasPrefix(email, "zhangwei"))
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("password", "example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, user.FullName)
	assert.Contains(t, user.Email, "@example.com")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")))
}

func TestGenerateRandomJobApplication(t *testing.T) {
	validStatuses := []domain.JobApplicationStatus{
		domain.StatusApplied,
		domain.StatusInterview,
		domain.StatusOffer,
		domain.StatusRejected,
	}

	for i := 0; i < 50; i++ {
		ja := GenerateRandomJobApplication(42)

		assert.Equal(t, int64(42), ja.UserID)
		assert.NotEmpty(t, ja.JobTitle)
		assert.NotEmpty(t, ja.Company)
		assert.Contains(t, validStatuses, ja.Status)
		assert.False(t, ja.ApplicationDate.After(time.Now()))
	}
}
