// Package server hosts the web UI and JSON API around the solve
// pipeline.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neurosym/logicpipe/utils/config"
)

// Server represents the HTTP server
type Server struct {
	mux       *http.ServeMux
	config    *config.ServerConfig
	envConfig *config.EnvConfig
}

// New creates a new HTTP server with the given configuration
func New(envConfig *config.EnvConfig) (*http.Server, error) {
	serverConfig := envConfig.GetServerConfig()

	s := &Server{
		mux:       http.NewServeMux(),
		config:    serverConfig,
		envConfig: envConfig,
	}

	s.routes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", serverConfig.Port),
		Handler:      s.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return server, nil
}

// routes sets up the server routes
func (s *Server) routes() {
	s.mux.HandleFunc("/", logRequest(s.cors(s.handleIndex)))

	s.mux.HandleFunc("/health", logRequest(s.cors(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})))

	s.mux.HandleFunc("/solve", logRequest(s.cors(s.handleSolve)))
	s.mux.HandleFunc("/providers", logRequest(s.cors(s.handleProviders)))
	s.mux.HandleFunc("/engines", logRequest(s.cors(s.handleEngines)))
}

// cors applies the configured CORS headers to a handler
func (s *Server) cors(handler http.HandlerFunc) http.HandlerFunc {
	if !s.config.CORS.Enabled {
		return handler
	}
	return func(w http.ResponseWriter, r *http.Request) {
		origins := s.config.CORS.AllowedOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		w.Header().Set("Access-Control-Allow-Origin", strings.Join(origins, ", "))
		if len(s.config.CORS.AllowedMethods) > 0 {
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(s.config.CORS.AllowedMethods, ", "))
		}
		if len(s.config.CORS.AllowedHeaders) > 0 {
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(s.config.CORS.AllowedHeaders, ", "))
		}
		if s.config.CORS.MaxAge > 0 {
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(s.config.CORS.MaxAge))
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		handler(w, r)
	}
}

// Run creates and starts the HTTP server with the given configuration
func Run(envConfig *config.EnvConfig) error {
	server, err := New(envConfig)
	if err != nil {
		return err
	}

	serverConfig := envConfig.GetServerConfig()

	fmt.Printf("Starting server on port %d...\n", serverConfig.Port)
	fmt.Printf("Web UI: http://localhost:%d/\n", serverConfig.Port)
	if serverConfig.Enabled {
		fmt.Println("Authentication is enabled. Bearer token required for /solve.")
		fmt.Printf("Example usage: curl -X POST -H 'Authorization: Bearer %s' -d '{\"query\":\"...\"}' 'http://localhost:%d/solve'\n",
			serverConfig.BearerToken, serverConfig.Port)
	} else {
		fmt.Printf("Example usage: curl -X POST -d '{\"query\":\"...\"}' 'http://localhost:%d/solve'\n", serverConfig.Port)
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %v", err)
	}

	return nil
}
