package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/tweetline/twitter-mcp-server/internal/protocol"
)

// HTTPConfig holds transport settings for the HTTP listener.
type HTTPConfig struct {
	Addr string
	// Token, when set, requires "Authorization: Bearer <Token>" on the
	// JSON-RPC endpoint.
	Token string
}

// NewRouter builds the chi router serving MCP JSON-RPC over POST /, with a
// /health endpoint left unauthenticated.
func NewRouter(server *Server, cfg HTTPConfig, log *logrus.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(cfg.Token))
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var rpcReq protocol.Request
			if err := json.NewDecoder(req.Body).Decode(&rpcReq); err != nil {
				writeJSON(w, protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
				return
			}

			resp, err := server.Handle(req.Context(), rpcReq)
			if err != nil {
				writeJSON(w, WriteError(rpcReq.ID, -32603, "internal error", err), http.StatusInternalServerError)
				return
			}

			if log != nil {
				log.WithFields(logrus.Fields{
					"method":     rpcReq.Method,
					"request_id": middleware.GetReqID(req.Context()),
				}).Debug("handled request")
			}
			writeJSON(w, resp, http.StatusOK)
		})
	})

	return r
}

// RunHTTP starts the HTTP listener and blocks until it fails.
func RunHTTP(server *Server, cfg HTTPConfig, log *logrus.Entry) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(server, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if log != nil {
		log.Infof("HTTP MCP server listening on %s", cfg.Addr)
	}
	return srv.ListenAndServe()
}

func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
