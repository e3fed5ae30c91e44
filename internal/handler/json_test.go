package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseEnvelope(t *testing.T) {
	h := newTestHandler(t)

	t.Run("successResponse", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()

		h.successResponse(rec, req, "获取求职申请列表成功", []string{})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "获取求职申请列表成功", resp.Message)
	})

	t.Run("createdResponse", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
		rec := httptest.NewRecorder()

		h.createdResponse(rec, req, "创建求职申请成功", nil)

		assert.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
	})

	t.Run("errorResponse 使用指定的状态码", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs/1", nil)
		rec := httptest.NewRecorder()

		h.errorResponse(rec, req, http.StatusNotFound, "求职申请不存在")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "求职申请不存在", resp.Message)
		assert.Nil(t, resp.Data)
	})

	t.Run("internalServerError 不泄露内部错误", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()

		h.internalServerError(rec, req, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.NotContains(t, resp.Message, "connection refused")
	})

	t.Run("badRequest 翻译校验错误", func(t *testing.T) {
		var req struct {
			Email string `json:"email" validate:"required,email"`
		}
		err := h.validate.Struct(req)

		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		rec := httptest.NewRecorder()

		h.badRequest(rec, r, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})
}
