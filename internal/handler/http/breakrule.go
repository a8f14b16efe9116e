package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/handler/http/response"
)

type BreakRuleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type breakRuleHandlerImpl struct {
	breakRuleService breakrule.Service
}

func NewBreakRuleHandler(breakRuleService breakrule.Service) BreakRuleHandler {
	return &breakRuleHandlerImpl{
		breakRuleService: breakRuleService,
	}
}

// Create implements BreakRuleHandler.
func (h *breakRuleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req breakrule.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Field 'name' is required", nil)
		return
	}

	result, err := h.breakRuleService.CreateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break rule created", result)
}

// Update implements BreakRuleHandler.
func (h *breakRuleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req breakrule.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.breakRuleService.UpdateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements BreakRuleHandler.
func (h *breakRuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.breakRuleService.ListRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
