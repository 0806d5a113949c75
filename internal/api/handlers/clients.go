package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/api/response"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
	"github.com/1mikez1/BonusTracker-sub001/internal/validation"
)

// ClientHandler handles HTTP requests for the client registry and client
// app record endpoints.
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new ClientHandler with the provided service dependency.
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// Clients handles GET requests to retrieve all clients. Passing
// ?unassigned=true restricts the result to clients without an active
// assignment, the candidate set for auto-assignment.
//
// Endpoint: GET /api/client?unassigned=true
// Response: 200 OK with array of Client
// Error: 500 Internal Server Error if retrieval fails
func (h *ClientHandler) Clients(w http.ResponseWriter, r *http.Request) {
	filter := model.ClientFilter{
		UnassignedOnly: r.URL.Query().Get("unassigned") == "true",
	}

	clients, err := h.clientService.GetClients(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveClients.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, clients)
}

// CreateClient handles POST requests to register a new client.
//
// Endpoint: POST /api/client
// Request Body: CreateClientRequest (name)
// Response: 201 Created with Client
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateClientRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateClient(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	client, err := h.clientService.RegisterClient(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create client", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, client)
}

// ClientApps handles GET requests to retrieve one client's app records.
//
// Endpoint: GET /api/client/{uuid}/apps
// Response: 200 OK with array of ClientApp
// Error: 400 Bad Request if client ID is invalid (validated by middleware)
// Error: 404 Not Found if client not found
// Error: 500 Internal Server Error if retrieval fails
func (h *ClientHandler) ClientApps(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	apps, err := h.clientService.GetClientApps(clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve client apps", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, apps)
}

// CreateClientApp handles POST requests to record a client's engagement
// with a promotional app. Profit is recorded in US dollars and feeds the
// ledger on its next computation.
//
// Endpoint: POST /api/client/{uuid}/apps
// Request Body: CreateClientAppRequest (appName, status, profitUs)
// Response: 201 Created with ClientApp
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if client not found
// Error: 500 Internal Server Error if creation fails
func (h *ClientHandler) CreateClientApp(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateClientAppRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	req.ClientID = clientID

	if err := validation.ValidateCreateClientApp(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	app, err := h.clientService.AddClientApp(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrClientNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create client app", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, app)
}
