package handlers

import (
	"net/http"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/response"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
)

// LedgerHandler handles HTTP requests for the cross-partner ledger view.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler with the provided service dependency.
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Ledger handles GET requests to retrieve the full profit-sharing ledger:
// one row per partner plus totals over the filtered set. The view is
// recomputed from the current data on every request.
//
// Endpoint: GET /api/ledger?q={query}&status={status}&sort={column}&order={asc|desc}
// Response: 200 OK with LedgerView (rows and totals)
// Error: 500 Internal Server Error if computation fails
func (h *LedgerHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// Sort order defaults to descending; only an explicit "asc" flips it.
	descending := params.Get("order") != "asc"

	view, err := h.ledgerService.GetLedger(
		r.Context(),
		params.Get("q"),
		params.Get("status"),
		params.Get("sort"),
		descending,
	)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetLedger.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, view)
}
