package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/attendance"
	"github.com/prodtrack/timecore-backend-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	UpdateDay(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	attendanceService attendance.Service
}

func NewTimeclockHandler(attendanceService attendance.Service) TimeclockHandler {
	return &timeclockHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements TimeclockHandler.
func (h *timeclockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.UserID == "" {
		response.BadRequest(w, "Field 'user_id' is required", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeclockHandler.
func (h *timeclockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.UserID == "" {
		response.BadRequest(w, "Field 'user_id' is required", nil)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateDay implements TimeclockHandler.
func (h *timeclockHandlerImpl) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")
	req.Date = chi.URLParam(r, "date")
	if !validDate(req.Date) {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.attendanceService.UpdateDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDay implements TimeclockHandler.
func (h *timeclockHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDay(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
