package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/1mikez1/BonusTracker-sub001/internal/api"
	"github.com/1mikez1/BonusTracker-sub001/internal/autoassign"
	"github.com/1mikez1/BonusTracker-sub001/internal/config"
	"github.com/1mikez1/BonusTracker-sub001/internal/database"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
	"github.com/1mikez1/BonusTracker-sub001/internal/secure"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Run schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Partner contact info is encrypted at rest when a key is configured
	vault, err := secure.NewVault(cfg.Secrets.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize vault: %v", err)
	}

	// Create repositories
	partnerRepo := repository.NewPartnerRepository(db, vault)
	clientRepo := repository.NewClientRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	clientAppRepo := repository.NewClientAppRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	historyRepo := repository.NewBalanceHistoryRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(
		partnerRepo,
		clientRepo,
		assignmentRepo,
		clientAppRepo,
		paymentRepo,
	)

	systemService := service.NewSystemService(db)
	// Create services
	partnerService := service.NewPartnerService(partnerRepo)
	clientService := service.NewClientService(clientRepo, clientAppRepo)
	assignmentService := service.NewAssignmentService(
		assignmentRepo,
		clientRepo,
		partnerRepo,
		autoassign.NewClient(cfg.AutoAssign.URL),
	)
	paymentService := service.NewPaymentService(paymentRepo, partnerRepo)
	ledgerService := service.NewLedgerService(snapshotRepo, partnerRepo)
	historyService := service.NewBalanceHistoryService(snapshotRepo, historyRepo)

	// Schedule the daily balance capture
	scheduler := cron.New()
	if cfg.History.Schedule != "" {
		if _, err := scheduler.AddFunc(cfg.History.Schedule, historyService.RunDailyCapture); err != nil {
			log.Fatalf("Failed to schedule balance capture: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Scheduled balance capture: %s", cfg.History.Schedule)
	}

	// Create router
	router := api.NewRouter(
		systemService,
		partnerService,
		clientService,
		assignmentService,
		paymentService,
		ledgerService,
		historyService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
