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

// PaymentHandler handles HTTP requests for partner payment endpoints.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler with the provided service dependency.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// PaymentsPerPartner handles GET requests to retrieve all payments made to a
// specific partner.
//
// Endpoint: GET /api/partner/{uuid}/payments
// Response: 200 OK with array of Payment
// Error: 400 Bad Request if partner ID is invalid (validated by middleware)
// Error: 404 Not Found if partner not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PaymentHandler) PaymentsPerPartner(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	payments, err := h.paymentService.GetPaymentsForPartner(partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePayments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, payments)
}

// CreatePayment handles POST requests to record a payment to a partner.
// The payment trail is append-only; the ledger reflects it on its next
// computation.
//
// Endpoint: POST /api/partner/{uuid}/payments
// Request Body: CreatePaymentRequest (amount, note, paidAt)
// Response: 201 Created with Payment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if partner not found
// Error: 500 Internal Server Error if creation fails
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreatePaymentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePayment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	payment, err := h.paymentService.RecordPayment(partnerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPartnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRecordPayment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, payment)
}
