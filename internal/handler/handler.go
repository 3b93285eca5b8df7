package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerpilot/career-service/internal/middleware"
	"github.com/careerpilot/career-service/internal/models"
	"github.com/careerpilot/career-service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles user registration
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.svc.Signup(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		writeMsg(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, models.ErrValidation):
		writeMsg(w, http.StatusBadRequest, "Name, email and password are required")
	case err != nil:
		h.serverError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		writeMsg(w, http.StatusBadRequest, "Invalid credentials")
	case err != nil:
		h.serverError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// Profile returns the authenticated user minus the password hash
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GenerateQuestions produces tailored aptitude-test questions
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentStatus string `json:"currentStatus"`
		CurrentField  string `json:"currentField"`
		InterestField string `json:"interestField"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	questions, err := h.svc.GenerateQuestions(r.Context(), req.CurrentStatus, req.CurrentField, req.InterestField)
	if err != nil {
		h.log.Errorf("Error generating questions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate questions.")
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// AnalyzeResults produces a short recommendation and records the run in
// the authenticated user's test history
func (h *Handler) AnalyzeResults(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req struct {
		Results map[string]any `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.svc.AnalyzeResults(r.Context(), user.ID, req.Results)
	if err != nil {
		h.log.Errorf("Error analyzing results: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze results.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

// CareerSuggestions produces career paths matching a free-form profile
func (h *Handler) CareerSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Skills     string `json:"skills"`
		Interests  string `json:"interests"`
		Experience string `json:"experience"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	suggestions, err := h.svc.CareerSuggestions(r.Context(), req.Skills, req.Interests, req.Experience)
	if err != nil {
		h.log.Errorf("Error generating career suggestions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate career suggestions.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analysis": suggestions})
}

// CareerChat answers one domain-restricted chatbot message
func (h *Handler) CareerChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.svc.CareerChat(r.Context(), req.Message)
	if err != nil {
		h.log.Errorf("Error in career chat: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate chat response.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// serverError logs the specific cause and answers with a generic body.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	writeMsg(w, http.StatusInternalServerError, "Server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
