package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/api/response"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
	"github.com/1mikez1/BonusTracker-sub001/internal/validation"
)

// AssignmentHandler handles HTTP requests for client-partner assignment
// endpoints, including the auto-assignment trigger.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler with the provided service dependency.
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// Assignments handles GET requests to retrieve all active assignments.
//
// Endpoint: GET /api/assignment
// Response: 200 OK with array of Assignment
// Error: 500 Internal Server Error if retrieval fails
func (h *AssignmentHandler) Assignments(w http.ResponseWriter, _ *http.Request) {
	assignments, err := h.assignmentService.GetAssignments()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssignments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assignments)
}

// CreateAssignment handles POST requests to link a client to a partner.
//
// Endpoint: POST /api/assignment
// Request Body: CreateAssignmentRequest (clientId, partnerId, optional override pair)
// Response: 201 Created with Assignment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if client or partner not found
// Error: 409 Conflict if the client already has an active assignment
// Error: 500 Internal Server Error if creation fails
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssignmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAssignment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	assignment, err := h.assignmentService.AssignClient(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrClientNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrPartnerNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrClientAlreadyAssigned):
			response.RespondError(w, http.StatusConflict, apperrors.ErrClientAlreadyAssigned.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateAssignment.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, assignment)
}

// UpdateOverride handles PUT requests to set or clear an assignment's
// override split pair. Omitting both fields clears the override, reverting
// the client to the partner's default terms.
//
// Endpoint: PUT /api/assignment/{uuid}
// Request Body: UpdateOverrideRequest (both override fields or neither)
// Response: 204 No Content
// Error: 400 Bad Request if assignment ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if assignment not found
// Error: 500 Internal Server Error if update fails
func (h *AssignmentHandler) UpdateOverride(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateOverrideRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateOverride(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.assignmentService.UpdateOverride(assignmentID, req); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssignmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateAssignment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// DeleteAssignment handles DELETE requests to unassign a client from its
// partner. The client's profit history stays; it simply stops counting
// toward any partner until reassigned.
//
// Endpoint: DELETE /api/assignment/{uuid}
// Response: 204 No Content on successful removal
// Error: 400 Bad Request if assignment ID is invalid (validated by middleware)
// Error: 404 Not Found if assignment not found
// Error: 500 Internal Server Error if removal fails
func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "uuid")

	if err := h.assignmentService.Unassign(assignmentID); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssignmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRemoveAssignment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// AutoAssign handles POST requests to trigger the external auto-assignment
// procedure for all currently unassigned clients.
//
// Endpoint: POST /api/assignment/auto
// Response: 200 OK with array of per-client outcomes
// Error: 500 Internal Server Error if the procedure fails
// Error: 503 Service Unavailable if no auto-assignment endpoint is configured
func (h *AssignmentHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	outcomes, err := h.assignmentService.AutoAssign(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrAutoAssignNotConfigured) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrAutoAssignNotConfigured.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToAutoAssign.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, outcomes)
}
