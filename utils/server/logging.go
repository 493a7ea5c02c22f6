package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/neurosym/logicpipe/utils/config"
)

// logger is a custom logger for HTTP requests, shared across the package
var logger = log.New(os.Stdout, "", log.LstdFlags)

func logRequest(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		// Mask the credential in log output
		var authInfo string
		if auth := r.Header.Get("Authorization"); auth != "" {
			authInfo = maskToken(auth)
		}

		config.DebugLog("Request details:")
		config.DebugLog("- Remote Address: %s", r.RemoteAddr)
		config.DebugLog("- Content Length: %d", r.ContentLength)
		config.DebugLog("- Host: %s", r.Host)

		config.VerboseLog("Incoming request: %s %s", r.Method, r.URL.String())

		handler(wrapped, r)

		duration := time.Since(start)

		logEntry := fmt.Sprintf("Request: method=%s path=%s auth=%s status=%d duration=%v",
			r.Method,
			r.URL.Path,
			authInfo,
			wrapped.statusCode,
			duration)

		config.VerboseLog("Response: status=%d bytes=%d duration=%v",
			wrapped.statusCode,
			wrapped.written,
			duration)

		if wrapped.statusCode >= 400 {
			config.DebugLog("Error response: status=%d path=%s", wrapped.statusCode, r.URL.Path)
		}

		logger.Print(logEntry)
	}
}

// maskToken hides all but a hint of a bearer token for log output
func maskToken(token string) string {
	if len(token) <= 12 {
		return "********"
	}
	return token[:10] + "********"
}
