package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
	"github.com/neurosym/logicpipe/utils/pipeline"
	"github.com/neurosym/logicpipe/utils/solver"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// handleSolve runs the full pipeline for one query. With ?stream=true
// the response is an SSE stream of per-stage progress events followed
// by a final result event; otherwise a single JSON document.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, SolveResponse{
			Success: false,
			State:   pipeline.StateIdle.String(),
			Error:   "method not allowed",
		})
		return
	}

	if !checkAuth(s.config, w, r) {
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SolveResponse{
			Success: false,
			State:   pipeline.StateIdle.String(),
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	// The pipeline is never entered for an empty query
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, SolveResponse{
			Success: false,
			State:   pipeline.StateAborted.String(),
			Error:   "Please enter a question.",
		})
		return
	}

	p, errResp := s.buildPipeline(req)
	if errResp != nil {
		writeJSON(w, http.StatusServiceUnavailable, *errResp)
		return
	}

	if r.URL.Query().Get("stream") == "true" {
		s.solveStreaming(w, p, req.Query)
		return
	}

	result := p.Run(req.Query)
	resp := solveResponse(result)
	status := http.StatusOK
	if result.State == pipeline.StateAborted {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, resp)
}

// buildPipeline resolves the provider, credential and engine for one
// request. A non-nil response describes a configuration error.
func (s *Server) buildPipeline(req SolveRequest) (*pipeline.Pipeline, *SolveResponse) {
	modelName := req.Model
	if modelName == "" {
		modelName = s.envConfig.DefaultModel()
	}
	if modelName == "" {
		modelName = models.DefaultGoogleModel
	}

	provider := models.DetectProvider(modelName)
	if provider == nil {
		return nil, &SolveResponse{
			Success: false,
			State:   pipeline.StateAborted.String(),
			Error:   "no provider supports model " + modelName,
		}
	}
	provider.SetVerbose(config.Verbose)

	providerConfig, err := s.envConfig.GetProviderConfig(provider.Name())
	if err != nil {
		return nil, &SolveResponse{
			Success: false,
			State:   pipeline.StateAborted.String(),
			Error:   "API Key is missing. Run 'logicpipe configure'.",
		}
	}
	if config.IsPlaceholderAPIKey(providerConfig.APIKey) {
		return nil, &SolveResponse{
			Success: false,
			State:   pipeline.StateAborted.String(),
			Error:   "API Key is missing. Run 'logicpipe configure'.",
		}
	}
	if err := provider.Configure(providerConfig.APIKey); err != nil {
		return nil, &SolveResponse{
			Success: false,
			State:   pipeline.StateAborted.String(),
			Error:   err.Error(),
		}
	}

	solverConfig := s.envConfig.GetSolverConfig()
	engineName := req.Engine
	if engineName == "" {
		engineName = solverConfig.Engine
	}
	engine, err := solver.ForName(engineName, solverConfig)
	if err != nil {
		return nil, &SolveResponse{
			Success: false,
			State:   pipeline.StateAborted.String(),
			Error:   err.Error(),
		}
	}

	return pipeline.New(provider, modelName, engine), nil
}

// solveStreaming runs the pipeline in the background and relays its
// progress updates as SSE events, ending with a result event.
func (s *Server) solveStreaming(w http.ResponseWriter, p *pipeline.Pipeline, query string) {
	sw := newSSEWriter(w)
	if sw == nil {
		writeJSON(w, http.StatusInternalServerError, SolveResponse{
			Success: false,
			State:   pipeline.StateIdle.String(),
			Error:   "streaming unsupported by connection",
		})
		return
	}

	updates := make(chan pipeline.ProgressUpdate, 8)
	p.SetProgressWriter(pipeline.NewChannelProgressWriter(updates))

	resultCh := make(chan *pipeline.Result, 1)
	go func() {
		resultCh <- p.Run(query)
		close(updates)
	}()

	for update := range updates {
		switch update.Type {
		case pipeline.ProgressError:
			sw.SendError(update.Error.Error())
		default:
			sw.SendProgress(update.Stage.String(), update.Message)
		}
	}

	sw.SendResult(solveResponse(<-resultCh))
}

// solveResponse converts a pipeline result into the wire format
func solveResponse(result *pipeline.Result) SolveResponse {
	resp := SolveResponse{
		Success:     result.State == pipeline.StateDone,
		Query:       result.Query,
		Program:     result.Program,
		Models:      result.Models,
		ModelCount:  len(result.Models),
		Explanation: result.Explanation,
		State:       result.State.String(),
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}

// handleProviders lists registered providers and whether each has a key
func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	var providers []ProviderInfo
	for _, metadata := range models.GetAvailableProviders() {
		configured := false
		if providerConfig, err := s.envConfig.GetProviderConfig(metadata.Name); err == nil {
			configured = !config.IsPlaceholderAPIKey(providerConfig.APIKey)
		}
		providers = append(providers, ProviderInfo{
			Name:        metadata.Name,
			Description: metadata.Description,
			Configured:  configured,
		})
	}

	writeJSON(w, http.StatusOK, ProviderListResponse{
		Success:   true,
		Providers: providers,
	})
}

// handleEngines lists the available solver engines
func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, EngineListResponse{
		Success: true,
		Engines: solver.AvailableEngines(),
		Default: s.envConfig.GetSolverConfig().Engine,
	})
}
