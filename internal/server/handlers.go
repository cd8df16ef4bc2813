package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/anveshm/budgetwise/internal/auth"
	"github.com/anveshm/budgetwise/internal/middleware"
	"github.com/anveshm/budgetwise/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userJSON `json:"user"`
}

type userJSON struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{Token: token, User: toUserJSON(user)})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}

	out := make([]userJSON, 0, len(users))
	for _, u := range users {
		out = append(out, toUserJSON(u))
	}
	writeJSON(w, out)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	txs, err := s.store.ListTransactions(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list transactions", "user_id", userID, "error", err)
		http.Error(w, "failed to list transactions", http.StatusInternalServerError)
		return
	}

	slog.Debug("Listed transactions",
		"requester", middleware.GetUserID(r.Context()),
		"user_id", userID,
		"count", len(txs),
	)
	if txs == nil {
		txs = []*models.Transaction{}
	}
	writeJSON(w, txs)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	budgets, err := s.store.ListBudgets(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list budgets", "user_id", userID, "error", err)
		http.Error(w, "failed to list budgets", http.StatusInternalServerError)
		return
	}

	if budgets == nil {
		budgets = []*models.Budget{}
	}
	writeJSON(w, budgets)
}

// pathUserID parses the {id} path segment, writing a 400 on failure.
func pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
