package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/api/response"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
	"github.com/1mikez1/BonusTracker-sub001/internal/validation"
)

// PartnerHandler handles HTTP requests for partner endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the partner, ledger, and history services.
type PartnerHandler struct {
	partnerService *service.PartnerService
	ledgerService  *service.LedgerService
	historyService *service.BalanceHistoryService
}

// NewPartnerHandler creates a new PartnerHandler with the provided service dependencies.
func NewPartnerHandler(
	partnerService *service.PartnerService,
	ledgerService *service.LedgerService,
	historyService *service.BalanceHistoryService,
) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
		ledgerService:  ledgerService,
		historyService: historyService,
	}
}

// Partners handles GET requests to retrieve all partners, optionally
// filtered by a case-insensitive name query.
//
// Endpoint: GET /api/partner?q={query}
// Response: 200 OK with array of Partner
// Error: 500 Internal Server Error if retrieval fails
func (h *PartnerHandler) Partners(w http.ResponseWriter, r *http.Request) {
	filter := model.PartnerFilter{
		Query: r.URL.Query().Get("q"),
	}

	partners, err := h.partnerService.GetPartners(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePartners.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, partners)
}

// GetPartner handles GET requests to retrieve a single partner by ID.
//
// Endpoint: GET /api/partner/{uuid}
// Response: 200 OK with Partner
// Error: 400 Bad Request if partner ID is invalid (validated by middleware)
// Error: 404 Not Found if partner not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	partner, err := h.partnerService.GetPartner(partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePartner.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, partner)
}

// CreatePartner handles POST requests to create a new partner.
// Validates the request body, including the default split pair.
//
// Endpoint: POST /api/partner
// Request Body: CreatePartnerRequest (name, defaultSplitPartner, defaultSplitOwner, contact, notes)
// Response: 201 Created with Partner
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePartnerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePartner(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	partner, err := h.partnerService.CreatePartner(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreatePartner.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, partner)
}

// UpdatePartner handles PUT requests to update an existing partner.
// Changing the default split pair affects every client of this partner
// without an override, on the next ledger computation.
//
// Endpoint: PUT /api/partner/{uuid}
// Request Body: UpdatePartnerRequest (all fields optional; split pair together or not at all)
// Response: 200 OK with updated Partner
// Error: 400 Bad Request if partner ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if partner not found
// Error: 500 Internal Server Error if update fails
func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePartnerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePartner(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	partner, err := h.partnerService.UpdatePartner(partnerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdatePartner.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, partner)
}

// Breakdown handles GET requests to retrieve a partner's per-client profit
// breakdown, computed from the current snapshot.
//
// Endpoint: GET /api/partner/{uuid}/breakdown
// Response: 200 OK with array of ClientBreakdownLine
// Error: 400 Bad Request if partner ID is invalid (validated by middleware)
// Error: 404 Not Found if partner not found
// Error: 500 Internal Server Error if computation fails
func (h *PartnerHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	breakdown, err := h.ledgerService.GetPartnerBreakdown(r.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetBreakdown.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, breakdown)
}

// Balance handles GET requests to retrieve a partner's aggregate balance,
// computed from the current snapshot.
//
// Endpoint: GET /api/partner/{uuid}/balance
// Response: 200 OK with balance figures and settlement status
// Error: 400 Bad Request if partner ID is invalid (validated by middleware)
// Error: 404 Not Found if partner not found
// Error: 500 Internal Server Error if computation fails
func (h *PartnerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	balance, status, err := h.ledgerService.GetPartnerBalance(r.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetBalance.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"balance": balance,
		"status":  status,
	})
}

// History handles GET requests to retrieve a partner's captured balance
// history. Both bounds are optional; the range defaults to the last year.
//
// Endpoint: GET /api/partner/{uuid}/history?start={date}&end={date}
// Response: 200 OK with array of PartnerBalanceSnapshot, oldest first
// Error: 400 Bad Request if partner ID or a date bound is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *PartnerHandler) History(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(-1, 0, 0)

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := validation.ParseTime(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid start date", err.Error())
			return
		}
		startDate = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := validation.ParseTime(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid end date", err.Error())
			return
		}
		endDate = parsed
	}

	history, err := h.historyService.GetHistory(partnerID, startDate, endDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}
