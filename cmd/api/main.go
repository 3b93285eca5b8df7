package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/careerpilot/career-service/internal/auth"
	"github.com/careerpilot/career-service/internal/config"
	"github.com/careerpilot/career-service/internal/handler"
	"github.com/careerpilot/career-service/internal/integrations/gemini"
	"github.com/careerpilot/career-service/internal/middleware"
	"github.com/careerpilot/career-service/internal/repository"
	"github.com/careerpilot/career-service/internal/service"
	"github.com/careerpilot/career-service/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	llm, err := gemini.NewClient(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create gemini client: %v", err)
	}
	var mailer service.WelcomeMailer
	if cfg.EmailEnabled() {
		mailer = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, llm, tokens, mailer, logger)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/api/auth/signup", h.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/generate-questions", h.GenerateQuestions).Methods("POST")
	r.HandleFunc("/career-suggestions", h.CareerSuggestions).Methods("POST")
	r.HandleFunc("/career-chat", h.CareerChat).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(tokens, repo, logger))
	authRouter.HandleFunc("/api/user/profile", h.Profile).Methods("GET")
	authRouter.HandleFunc("/analyze-results", h.AnalyzeResults).Methods("POST")
	// Health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, fmt.Sprintf("Database unreachable: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	// Daily activity digest
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		users, err := repo.CountUsers()
		if err != nil {
			logger.Errorf("Digest: failed to count users: %v", err)
			return
		}
		tests, err := repo.CountTestsSince(time.Now().Add(-24 * time.Hour))
		if err != nil {
			logger.Errorf("Digest: failed to count tests: %v", err)
			return
		}
		logger.Infof("Daily digest: %d users registered, %d tests recorded in the last day", users, tests)
	}); err != nil {
		logger.Fatalf("Failed to schedule digest job: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
