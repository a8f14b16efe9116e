package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/issue"
	"github.com/prodtrack/timecore-backend-go/internal/domain/summary"
	"github.com/prodtrack/timecore-backend-go/internal/handler/http/response"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

func validDate(date string) bool {
	_, err := time.Parse(timeutil.DateLayout, date)
	return err == nil
}

type TimesheetHandler interface {
	GetDailySummary(w http.ResponseWriter, r *http.Request)
	ListPendingIssues(w http.ResponseWriter, r *http.Request)
	ClearIssue(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	summaryService summary.Service
	issueService   issue.Service
}

func NewTimesheetHandler(summaryService summary.Service, issueService issue.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		summaryService: summaryService,
		issueService:   issueService,
	}
}

type dailySummaryResponse struct {
	summary.DailySummary
	Classification issue.Classification `json:"classification"`
}

// GetDailySummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	sum, err := h.summaryService.ComputeDailySummary(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dailySummaryResponse{
		DailySummary:   sum,
		Classification: h.issueService.Classify(sum),
	})
}

// ListPendingIssues implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListPendingIssues(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("start")
	to := r.URL.Query().Get("end")
	if !validDate(from) || !validDate(to) {
		response.BadRequest(w, "Query parameters 'start' and 'end' must be YYYY-MM-DD", nil)
		return
	}

	pending, err := h.issueService.ListPendingIssues(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// ClearIssue implements TimesheetHandler. The clearing actor comes from the
// verified token, never from the request body.
func (h *timesheetHandlerImpl) ClearIssue(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	actorID, ok := claims["user_id"].(string)
	if !ok || actorID == "" {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	clear, err := h.issueService.ClearIssue(r.Context(), userID, date, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Issue cleared", clear)
}
