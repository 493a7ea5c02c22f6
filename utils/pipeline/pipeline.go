// Package pipeline orchestrates the three-stage solve flow: translate
// the user's puzzle into a logic program, run the program through a
// solver engine, and interpret the solver's output back into natural
// language.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
	"github.com/neurosym/logicpipe/utils/solver"
)

// ErrEmptyQuery is returned when the query is empty or whitespace-only
var ErrEmptyQuery = errors.New("query is empty")

// State identifies where a pipeline run is in its lifecycle
type State int

const (
	StateIdle State = iota
	StateTranslating
	StateSolving
	StateInterpreting
	StateDone
	StateAborted
)

// String returns the display name of a state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateTranslating:
		return "Translating"
	case StateSolving:
		return "Solving"
	case StateInterpreting:
		return "Interpreting"
	case StateDone:
		return "Done"
	case StateAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result holds every artifact of one pipeline run. All fields are
// request-scoped values; nothing survives the run.
type Result struct {
	Query       string
	Program     string
	Models      []string
	Explanation string
	State       State
	Err         error // set when State is StateAborted
}

// Pipeline runs the three stages sequentially for one request at a
// time. It holds no state between runs beyond its collaborators, which
// are injected so tests can use fakes.
type Pipeline struct {
	provider  models.Provider
	modelName string
	engine    solver.Engine
	progress  ProgressWriter
}

// New creates a pipeline for the given provider, model and engine
func New(provider models.Provider, modelName string, engine solver.Engine) *Pipeline {
	return &Pipeline{
		provider:  provider,
		modelName: modelName,
		engine:    engine,
	}
}

// SetProgressWriter registers a sink for per-stage progress updates
func (p *Pipeline) SetProgressWriter(w ProgressWriter) {
	p.progress = w
}

func (p *Pipeline) reportStage(state State, message string) {
	if p.progress != nil {
		p.progress.WriteProgress(ProgressUpdate{Type: ProgressStage, Stage: state, Message: message})
	}
}

func (p *Pipeline) abort(result *Result, err error) *Result {
	result.State = StateAborted
	result.Err = err
	if p.progress != nil {
		p.progress.WriteProgress(ProgressUpdate{Type: ProgressError, Stage: StateAborted, Error: err})
	}
	return result
}

// Run executes the pipeline for one query.
//
// An empty query or a translation failure aborts the run before any
// later stage. Solver failures never abort: they are folded into
// sentinel model entries so the interpretation stage can describe them.
// An interpretation failure becomes the explanation text itself, and
// the run still completes.
func (p *Pipeline) Run(query string) *Result {
	result := &Result{Query: query, State: StateIdle}

	if strings.TrimSpace(query) == "" {
		return p.abort(result, ErrEmptyQuery)
	}

	result.State = StateTranslating
	p.reportStage(StateTranslating, "Thinking... (Step 1: Translating to Logic)")
	program, err := Translate(p.provider, p.modelName, query, p.engine)
	if err != nil {
		return p.abort(result, err)
	}
	result.Program = program

	result.State = StateSolving
	p.reportStage(StateSolving, "Reasoning... (Step 2: Running Solver)")
	result.Models = p.engine.Solve(program)

	result.State = StateInterpreting
	p.reportStage(StateInterpreting, "Synthesizing... (Step 3: Final Answer)")
	explanation, err := Interpret(p.provider, p.modelName, query, program, result.Models)
	if err != nil {
		// The interpretation stage substitutes an error description for
		// the explanation instead of aborting a run that already has a
		// solver verdict.
		config.DebugLog("[Pipeline] Interpretation failed: %v", err)
		explanation = fmt.Sprintf("Interpretation Error: %v", err)
	}
	result.Explanation = explanation

	result.State = StateDone
	if p.progress != nil {
		p.progress.WriteProgress(ProgressUpdate{Type: ProgressComplete, Stage: StateDone, Message: "Complete!"})
	}
	return result
}
