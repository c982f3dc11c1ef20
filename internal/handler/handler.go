package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ardiansk/shop-service/internal/auth"
	"github.com/ardiansk/shop-service/internal/models"
	"github.com/ardiansk/shop-service/internal/repository"
	"github.com/ardiansk/shop-service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	user, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			respondError(w, http.StatusBadRequest, "email already registered")
		case errors.Is(err, auth.ErrEmptyPassword):
			respondError(w, http.StatusBadRequest, "password is required")
		default:
			h.log.Errorf("Register failed: %v", err)
			respondError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": fmt.Sprintf("User %s created", user.Name),
		"user":    user,
	})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.log.Errorf("Login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        user,
	})
}

// Profile returns the authenticated user
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Profile(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.Errorf("Profile lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Products lists the catalog
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.log.Errorf("Product listing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// SalesSummary returns the weekly sales report
func (h *Handler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.SalesSummary())
}

// Test is a liveness probe kept for the frontend's connectivity check
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Halo! Backend terhubung!"})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
