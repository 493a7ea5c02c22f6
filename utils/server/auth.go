package server

import (
	"net/http"
	"strings"

	"github.com/neurosym/logicpipe/utils/config"
)

func checkAuth(serverConfig *config.ServerConfig, w http.ResponseWriter, r *http.Request) bool {
	if !serverConfig.Enabled {
		config.DebugLog("Auth check skipped: server auth is disabled")
		return true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		config.VerboseLog("Missing Authorization header")
		writeJSON(w, http.StatusUnauthorized, SolveResponse{
			Success: false,
			State:   "Aborted",
			Error:   "Authorization header required",
		})
		return false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		config.VerboseLog("Invalid authorization header format")
		writeJSON(w, http.StatusUnauthorized, SolveResponse{
			Success: false,
			State:   "Aborted",
			Error:   "Invalid authorization header format",
		})
		return false
	}

	if parts[1] != serverConfig.BearerToken {
		config.VerboseLog("Invalid bearer token")
		writeJSON(w, http.StatusUnauthorized, SolveResponse{
			Success: false,
			State:   "Aborted",
			Error:   "Invalid bearer token",
		})
		return false
	}

	config.DebugLog("Auth successful: valid bearer token")
	return true
}
