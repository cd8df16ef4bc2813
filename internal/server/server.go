// Package server wires the JSON API: routes, middleware, and the h2c
// listener. The API is a thin, sequential surface over the store; all the
// interesting concurrency lives in the seeding pipeline.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/anveshm/budgetwise/internal/auth"
	"github.com/anveshm/budgetwise/internal/middleware"
	"github.com/anveshm/budgetwise/internal/storage"
)

// Server holds the API dependencies.
type Server struct {
	store         storage.Store
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
}

// New creates a server over the given store and auth components.
func New(store storage.Store, jwtManager *auth.JWTManager) *Server {
	return &Server{
		store:         store,
		authenticator: auth.NewPasswordAuthenticator(store),
		jwtManager:    jwtManager,
	}
}

// Handler builds the full middleware-wrapped handler, ready to serve.
// h2c enables HTTP/2 without TLS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.Handle("GET /api/users", s.authed(s.handleListUsers))
	mux.Handle("GET /api/users/{id}/transactions", s.authed(s.handleListTransactions))
	mux.Handle("GET /api/users/{id}/budgets", s.authed(s.handleListBudgets))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Logging(middleware.CORS(mux))
	return h2c.NewHandler(handler, &http2.Server{})
}

// authed wraps a handler with bearer-token authentication.
func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(s.jwtManager, h)
}

// HTTPServer returns a configured http.Server bound to addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
