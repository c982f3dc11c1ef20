package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/ardiansk/shop-service/internal/auth"
	"github.com/ardiansk/shop-service/internal/config"
	"github.com/ardiansk/shop-service/internal/handler"
	"github.com/ardiansk/shop-service/internal/middleware"
	"github.com/ardiansk/shop-service/internal/repository"
	"github.com/ardiansk/shop-service/internal/service"
	"github.com/ardiansk/shop-service/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
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
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatalf("Failed to initialize token manager: %v", err)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)
	repo := repository.NewRepository(db)
	var mail *email.Sender
	if cfg.SMTPHost != "" {
		mail = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, hasher, tokens, mail, logger)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	// Public routes
	api.HandleFunc("/register", h.Register).Methods("POST")
	api.HandleFunc("/login", h.Login).Methods("POST")
	api.HandleFunc("/products", h.Products).Methods("GET")
	api.HandleFunc("/test", h.Test).Methods("GET")
	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.Auth(tokens, logger))
	authRouter.HandleFunc("/profile", h.Profile).Methods("GET")
	authRouter.HandleFunc("/sales-summary", h.SalesSummary).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORSOrigin)(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
