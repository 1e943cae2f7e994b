package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/handler/http/response"
)

type WorkLocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ValidateLocation(w http.ResponseWriter, r *http.Request)
}

type workLocationHandlerImpl struct {
	workLocationService worklocation.WorkLocationService
}

func NewWorkLocationHandler(workLocationService worklocation.WorkLocationService) WorkLocationHandler {
	return &workLocationHandlerImpl{
		workLocationService: workLocationService,
	}
}

// Create implements WorkLocationHandler.
func (h *workLocationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worklocation.CreateWorkLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workLocationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work location created successfully", result)
}

// Get implements WorkLocationHandler.
func (h *workLocationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workLocationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkLocationHandler.
func (h *workLocationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.workLocationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements WorkLocationHandler.
func (h *workLocationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req worklocation.UpdateWorkLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.workLocationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work location updated successfully", result)
}

// Delete implements WorkLocationHandler.
func (h *workLocationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.workLocationService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work location deleted successfully", nil)
}

// ValidateLocation implements WorkLocationHandler.
func (h *workLocationHandlerImpl) ValidateLocation(w http.ResponseWriter, r *http.Request) {
	var req worklocation.ValidateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workLocationService.ValidateLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
