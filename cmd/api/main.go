package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/financialking/budget-service/internal/config"
	"github.com/financialking/budget-service/internal/digest"
	"github.com/financialking/budget-service/internal/handler"
	"github.com/financialking/budget-service/internal/integrations/quotes"
	"github.com/financialking/budget-service/internal/middleware"
	"github.com/financialking/budget-service/internal/repository"
	"github.com/financialking/budget-service/internal/service"
	"github.com/financialking/budget-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository()
	quotesClient := quotes.NewClient(cfg, logger)
	svc := service.NewService(repo, quotesClient, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Schedule budget digest emails when SMTP is configured
	if cfg.DigestEnabled() {
		sender := email.NewSender(cfg, logger)
		job := digest.NewJob(svc, sender, cfg, logger)
		if err := job.Start(); err != nil {
			logger.Fatalf("Failed to start digest job: %v", err)
		}
		defer job.Stop()
	}

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/api/upload_data", h.UploadData).Methods("POST")
	r.HandleFunc("/api/budget_summary/{user_id}", h.BudgetSummary).Methods("GET")
	r.HandleFunc("/api/insight/{user_id}", h.Insight).Methods("GET")
	r.HandleFunc("/api/transactions/{user_id}/{account_type}", h.Transactions).Methods("GET")
	r.HandleFunc("/api/chatbot", h.Chatbot).Methods("POST")
	r.HandleFunc("/api/intent", h.ParseIntent).Methods("POST")
	// Quote feed passthrough endpoint
	r.HandleFunc("/api/price/{ticker}", func(w http.ResponseWriter, r *http.Request) {
		price, err := quotesClient.LookupPrice(r.Context(), mux.Vars(r)["ticker"])
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get price: %v", err), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"symbol": mux.Vars(r)["ticker"], "price": price})
	}).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
