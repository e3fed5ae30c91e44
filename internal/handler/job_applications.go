package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/job-tracker/backend/internal/domain"
)

func (h *Handler) CreateJobApplication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobTitle        string `json:"jobTitle" validate:"required"`
		Company         string `json:"company" validate:"required"`
		ApplicationDate string `json:"applicationDate" validate:"required"`
		Status          string `json:"status" validate:"omitempty,oneof=Applied Interview Offer Rejected"`
		Notes           string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	applicationDate, err := domain.ParseDate(req.ApplicationDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 所属用户只取自 context 中的当前用户，请求体中无法指定
	userID := r.Context().Value(UserIDCtxKey).(int64)

	ja := &domain.JobApplication{
		UserID:          userID,
		JobTitle:        req.JobTitle,
		Company:         req.Company,
		ApplicationDate: applicationDate,
		Status:          domain.JobApplicationStatus(req.Status),
		Notes:           req.Notes,
	}
	if ja.Status == "" {
		ja.Status = domain.StatusApplied
	}

	if err := h.repository.CreateJobApplication(ja); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "创建求职申请成功", ja)
}

func (h *Handler) GetMyJobApplications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	jas, err := h.repository.GetJobApplicationsByUserID(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取求职申请列表成功", jas)
}

func (h *Handler) UpdateJobApplication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobTitle        string `json:"jobTitle"`
		Company         string `json:"company"`
		ApplicationDate string `json:"applicationDate"`
		Status          string `json:"status" validate:"omitempty,oneof=Applied Interview Offer Rejected"`
		Notes           string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := domain.JobApplicationPatch{
		JobTitle: req.JobTitle,
		Company:  req.Company,
		Status:   req.Status,
		Notes:    req.Notes,
	}

	if req.ApplicationDate != "" {
		applicationDate, err := domain.ParseDate(req.ApplicationDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		patch.ApplicationDate = &applicationDate
	}

	ja := r.Context().Value(JobApplicationCtx).(*domain.JobApplication)
	ja.ApplyPatch(patch)

	if err := h.repository.UpdateJobApplication(ja); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// 查找到记录之后、更新之前记录刚好被删除
			h.errorResponse(w, r, http.StatusNotFound, "求职申请不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新求职申请成功", ja)
}

func (h *Handler) DeleteJobApplication(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)
	ja := r.Context().Value(JobApplicationCtx).(*domain.JobApplication)

	if err := h.repository.DeleteJobApplication(ja.ID, userID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "求职申请不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除求职申请成功", nil)
}
