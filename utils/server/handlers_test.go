package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
)

// fakeProvider stands in for the Google provider in handler tests
type fakeProvider struct {
	translateResponse string
	interpretResponse string
	translateErr      bool
}

func (f *fakeProvider) Name() string                    { return "google" }
func (f *fakeProvider) SupportsModel(model string) bool { return true }
func (f *fakeProvider) Configure(apiKey string) error   { return nil }
func (f *fakeProvider) SetVerbose(verbose bool)         {}
func (f *fakeProvider) SendPrompt(model, prompt string) (string, error) {
	if strings.Contains(prompt, "Solver's Output") {
		return f.interpretResponse, nil
	}
	if f.translateErr {
		return "", errors.New("model unavailable")
	}
	return f.translateResponse, nil
}

func overrideDetectProvider(t *testing.T, p models.Provider) {
	t.Helper()
	original := models.DetectProvider
	models.DetectProvider = func(modelName string) models.Provider { return p }
	t.Cleanup(func() { models.DetectProvider = original })
}

func testEnvConfig() *config.EnvConfig {
	return &config.EnvConfig{
		Providers: map[string]*config.Provider{
			"google": {
				APIKey: "test-key",
				Models: []config.Model{{Name: "gemini-2.5-flash", Type: "text"}},
			},
		},
		Solver: &config.SolverConfig{Engine: "sat"},
	}
}

func newTestServer(t *testing.T, envConfig *config.EnvConfig) *httptest.Server {
	t.Helper()
	srv, err := New(envConfig)
	assert.NoError(t, err)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postSolve(t *testing.T, ts *httptest.Server, body SolveRequest, headers map[string]string) (*http.Response, SolveResponse) {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/solve", bytes.NewReader(data))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var solveResp SolveResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&solveResp))
	return resp, solveResp
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	resp, err := http.Get(ts.URL + "/health")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
}

func TestSolveRejectsEmptyQuery(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	for _, query := range []string{"", "   \n\t"} {
		resp, solveResp := postSolve(t, ts, SolveRequest{Query: query}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, solveResp.Success)
		assert.Equal(t, "Please enter a question.", solveResp.Error)
		assert.Equal(t, "Aborted", solveResp.State)
	}
}

func TestSolveRejectsWrongMethod(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	resp, err := http.Get(ts.URL + "/solve")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSolveRequiresAuthWhenEnabled(t *testing.T) {
	envConfig := testEnvConfig()
	envConfig.Server = &config.ServerConfig{Port: 8080, Enabled: true, BearerToken: "secret"}
	ts := newTestServer(t, envConfig)

	resp, solveResp := postSolve(t, ts, SolveRequest{Query: "puzzle"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, solveResp.Error, "Authorization header required")

	// With the right token the request passes auth and fails later
	// only if configuration is broken; here it reaches the pipeline.
	overrideDetectProvider(t, &fakeProvider{
		translateResponse: "```\np cnf 1 1\n1 0\n```",
		interpretResponse: "ok",
	})
	resp, solveResp = postSolve(t, ts, SolveRequest{Query: "puzzle"},
		map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, solveResp.Success)
}

func TestSolveMissingCredential(t *testing.T) {
	envConfig := testEnvConfig()
	envConfig.Providers["google"].APIKey = "YOUR_API_KEY_HERE"
	ts := newTestServer(t, envConfig)

	overrideDetectProvider(t, &fakeProvider{})

	resp, solveResp := postSolve(t, ts, SolveRequest{Query: "puzzle"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.False(t, solveResp.Success)
	assert.Contains(t, solveResp.Error, "API Key is missing")
}

func TestSolveUnknownEngine(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())
	overrideDetectProvider(t, &fakeProvider{})

	resp, solveResp := postSolve(t, ts, SolveRequest{Query: "puzzle", Engine: "prolog"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, solveResp.Error, "unknown solver engine")
}

func TestSolveEndToEndTwoModels(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	// Exactly-one-of-two CNF: two models for the seating puzzle
	overrideDetectProvider(t, &fakeProvider{
		translateResponse: "```dimacs\np cnf 2 2\n1 2 0\n-1 -2 0\n```",
		interpretResponse: "A and B are never adjacent; there are two valid arrangements.",
	})

	resp, solveResp := postSolve(t, ts, SolveRequest{
		Query: "Three people A, B, C sit in a row; A is not next to B.",
	}, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, solveResp.Success)
	assert.Equal(t, "Done", solveResp.State)
	assert.Equal(t, "p cnf 2 2\n1 2 0\n-1 -2 0", solveResp.Program)
	assert.Equal(t, 2, solveResp.ModelCount)
	assert.Len(t, solveResp.Models, 2)
	assert.Equal(t, "A and B are never adjacent; there are two valid arrangements.", solveResp.Explanation)
}

// sseEvent is one decoded server-sent event from a streaming response
type sseEvent struct {
	name string
	data string
}

func parseSSE(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				ev.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				ev.data = strings.TrimPrefix(line, "data: ")
			}
		}
		events = append(events, ev)
	}
	return events
}

func TestSolveStreamingEmitsStagesThenResult(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	overrideDetectProvider(t, &fakeProvider{
		translateResponse: "```dimacs\np cnf 2 2\n1 2 0\n-1 -2 0\n```",
		interpretResponse: "There are two valid arrangements.",
	})

	data, err := json.Marshal(SolveRequest{Query: "Three people sit in a row."})
	assert.NoError(t, err)

	resp, err := http.Post(ts.URL+"/solve?stream=true", "application/json", bytes.NewReader(data))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	events := parseSSE(t, string(body))
	assert.NotEmpty(t, events)

	// One progress event per stage, in pipeline order, then the result
	var stages []string
	for _, ev := range events[:len(events)-1] {
		assert.Equal(t, "progress", ev.name)
		var progress struct {
			Stage   string `json:"stage"`
			Message string `json:"message"`
		}
		assert.NoError(t, json.Unmarshal([]byte(ev.data), &progress))
		stages = append(stages, progress.Stage)
	}
	assert.Equal(t, []string{"Translating", "Solving", "Interpreting", "Done"}, stages)

	final := events[len(events)-1]
	assert.Equal(t, "result", final.name)
	var solveResp SolveResponse
	assert.NoError(t, json.Unmarshal([]byte(final.data), &solveResp))
	assert.True(t, solveResp.Success)
	assert.Equal(t, "Done", solveResp.State)
	assert.Equal(t, 2, solveResp.ModelCount)
	assert.Equal(t, "There are two valid arrangements.", solveResp.Explanation)
}

func TestSolveStreamingReportsAbort(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	overrideDetectProvider(t, &fakeProvider{translateErr: true})

	data, err := json.Marshal(SolveRequest{Query: "puzzle"})
	assert.NoError(t, err)

	resp, err := http.Post(ts.URL+"/solve?stream=true", "application/json", bytes.NewReader(data))
	assert.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	events := parseSSE(t, string(body))
	assert.True(t, len(events) >= 2)

	// The translation failure is streamed as an error event before the
	// final result event reports the aborted run.
	errorSeen := false
	for _, ev := range events[:len(events)-1] {
		if ev.name == "error" {
			errorSeen = true
		}
	}
	assert.True(t, errorSeen)

	final := events[len(events)-1]
	assert.Equal(t, "result", final.name)
	var solveResp SolveResponse
	assert.NoError(t, json.Unmarshal([]byte(final.data), &solveResp))
	assert.False(t, solveResp.Success)
	assert.Equal(t, "Aborted", solveResp.State)
	assert.Contains(t, solveResp.Error, "translation failed")
}

func TestEnginesEndpoint(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	resp, err := http.Get(ts.URL + "/engines")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var engines EngineListResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&engines))
	assert.True(t, engines.Success)
	assert.Equal(t, "sat", engines.Default)
}

func TestProvidersEndpoint(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	resp, err := http.Get(ts.URL + "/providers")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var providers ProviderListResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&providers))
	assert.True(t, providers.Success)

	byName := map[string]ProviderInfo{}
	for _, p := range providers.Providers {
		byName[p.Name] = p
	}
	assert.True(t, byName["google"].Configured)
	assert.False(t, byName["openai"].Configured)
}

func TestIndexServesUI(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	resp, err := http.Get(ts.URL + "/")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestIndexUnknownPath(t *testing.T) {
	ts := newTestServer(t, testEnvConfig())

	resp, err := http.Get(ts.URL + "/nope")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
