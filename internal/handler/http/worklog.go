package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/worklog"
	"github.com/prodtrack/timecore-backend-go/internal/handler/http/response"
)

type WorklogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Finish(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListDay(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService worklog.Service
}

func NewWorklogHandler(worklogService worklog.Service) WorklogHandler {
	return &worklogHandlerImpl{
		worklogService: worklogService,
	}
}

// Create implements WorklogHandler.
func (h *worklogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.UserID == "" || req.JobID == "" || req.ProcessID == "" {
		response.BadRequest(w, "Fields 'user_id', 'job_id' and 'process_id' are required", nil)
		return
	}

	result, err := h.worklogService.CreateSegment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work segment created", result)
}

// Finish implements WorklogHandler.
func (h *worklogHandlerImpl) Finish(w http.ResponseWriter, r *http.Request) {
	var req worklog.FinishSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.worklogService.FinishSegment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements WorklogHandler.
func (h *worklogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worklog.UpdateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.worklogService.UpdateSegment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements WorklogHandler.
func (h *worklogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.worklogService.DeleteSegment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// ListDay implements WorklogHandler.
func (h *worklogHandlerImpl) ListDay(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	date := r.URL.Query().Get("date")
	if userID == "" || date == "" {
		response.BadRequest(w, "Query parameters 'user_id' and 'date' are required", nil)
		return
	}

	result, err := h.worklogService.ListDay(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
