package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/config"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 1

	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)

	return h
}

func signTestToken(t *testing.T, h *Handler, userID int64) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(userID, 10),
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	require.NoError(t, err)

	return ss
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	h := newTestHandler(t)

	nextCalled := false
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotUserID = r.Context().Value(UserIDCtxKey).(int64)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("缺少 Authorization 请求头", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("请求头格式错误", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
	})

	t.Run("无效的令牌", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
	})

	t.Run("签名密钥不匹配的令牌", func(t *testing.T) {
		nextCalled = false
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				Subject:   "42",
			},
		})
		ss, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+ss)
		rec := httptest.NewRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
	})

	t.Run("过期的令牌", func(t *testing.T) {
		nextCalled = false
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				Subject:   "42",
			},
		})
		ss, err := token.SignedString([]byte(h.config.JWT.Secret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+ss)
		rec := httptest.NewRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
	})

	t.Run("有效令牌将用户 ID 附在 context 中", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, h, 42))
		rec := httptest.NewRecorder()

		h.auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, int64(42), gotUserID)
	})
}

func TestRecovererMiddleware(t *testing.T) {
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()

	h.recoverer(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	h := newTestHandler(t)
	h.RegisterRoutes()

	// 未登录时所有受保护的路由都应该在进入 handler 之前被拦截
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/my-info"},
		{http.MethodPost, "/jobs"},
		{http.MethodGet, "/jobs"},
		{http.MethodPut, "/jobs/1"},
		{http.MethodDelete, "/jobs/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()

		h.Mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestJobApplicationMiddlewareInvalidID(t *testing.T) {
	h := newTestHandler(t)
	h.RegisterRoutes()

	// ID 不是数字时不会查库，直接返回 404
	req := httptest.NewRequest(http.MethodDelete, "/jobs/abc", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, h, 42))
	rec := httptest.NewRecorder()

	h.Mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "求职申请不存在", resp.Message)
}
