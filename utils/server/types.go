package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SolveRequest represents a request to run the pipeline
type SolveRequest struct {
	Query  string `json:"query"`
	Model  string `json:"model,omitempty"`  // optional model override
	Engine string `json:"engine,omitempty"` // optional engine override
}

// SolveResponse represents the full pipeline result
type SolveResponse struct {
	Success     bool     `json:"success"`
	Query       string   `json:"query,omitempty"`
	Program     string   `json:"program,omitempty"`
	Models      []string `json:"models,omitempty"`
	ModelCount  int      `json:"modelCount"`
	Explanation string   `json:"explanation,omitempty"`
	State       string   `json:"state"`
	Error       string   `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ProviderInfo represents information about a provider
type ProviderInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Configured  bool   `json:"configured"`
}

// ProviderListResponse represents the response for provider listing
type ProviderListResponse struct {
	Success   bool           `json:"success"`
	Providers []ProviderInfo `json:"providers"`
	Error     string         `json:"error,omitempty"`
}

// EngineListResponse represents the response for engine listing
type EngineListResponse struct {
	Success bool        `json:"success"`
	Engines interface{} `json:"engines"`
	Default string      `json:"default"`
}

// responseWriter wraps http.ResponseWriter to capture status and size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// sseWriter emits Server-Sent Events for streaming solve requests
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// newSSEWriter prepares the response for event streaming; returns nil
// if the underlying writer cannot flush.
func newSSEWriter(w http.ResponseWriter) *sseWriter {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return &sseWriter{w: w, flusher: flusher}
}

func (sw *sseWriter) send(event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(sw.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	sw.flusher.Flush()
	return nil
}

// SendProgress emits a stage progress event
func (sw *sseWriter) SendProgress(stage, message string) error {
	return sw.send("progress", map[string]string{"stage": stage, "message": message})
}

// SendResult emits the final pipeline result
func (sw *sseWriter) SendResult(resp SolveResponse) error {
	return sw.send("result", resp)
}

// SendError emits an error event
func (sw *sseWriter) SendError(message string) error {
	return sw.send("error", map[string]string{"error": message})
}
