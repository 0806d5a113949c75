package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/handlers"
	custommiddleware "github.com/1mikez1/BonusTracker-sub001/internal/api/middleware"
	"github.com/1mikez1/BonusTracker-sub001/internal/config"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	partnerService *service.PartnerService,
	clientService *service.ClientService,
	assignmentService *service.AssignmentService,
	paymentService *service.PaymentService,
	ledgerService *service.LedgerService,
	historyService *service.BalanceHistoryService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/ledger", func(r chi.Router) {
			ledgerHandler := handlers.NewLedgerHandler(ledgerService)
			r.Get("/", ledgerHandler.Ledger)
		})

		r.Route("/partner", func(r chi.Router) {
			partnerHandler := handlers.NewPartnerHandler(partnerService, ledgerService, historyService)
			paymentHandler := handlers.NewPaymentHandler(paymentService)

			r.Get("/", partnerHandler.Partners)
			r.Post("/", partnerHandler.CreatePartner)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", partnerHandler.GetPartner)
				r.Put("/", partnerHandler.UpdatePartner)
				r.Get("/breakdown", partnerHandler.Breakdown)
				r.Get("/balance", partnerHandler.Balance)
				r.Get("/history", partnerHandler.History)
				r.Get("/payments", paymentHandler.PaymentsPerPartner)
				r.Post("/payments", paymentHandler.CreatePayment)
			})
		})

		r.Route("/client", func(r chi.Router) {
			clientHandler := handlers.NewClientHandler(clientService)

			r.Get("/", clientHandler.Clients)
			r.Post("/", clientHandler.CreateClient)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/apps", clientHandler.ClientApps)
				r.Post("/apps", clientHandler.CreateClientApp)
			})
		})

		r.Route("/assignment", func(r chi.Router) {
			assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

			r.Get("/", assignmentHandler.Assignments)
			r.Post("/", assignmentHandler.CreateAssignment)
			r.Post("/auto", assignmentHandler.AutoAssign)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", assignmentHandler.UpdateOverride)
				r.Delete("/", assignmentHandler.DeleteAssignment)
			})
		})
	})

	return r
}
