package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/neurosym/logicpipe/utils/config"
)

const clingoErrorPrefix = "Clingo Error: "

// ClingoEngine runs programs through the external clingo binary with
// exhaustive model enumeration (--models=0) and JSON output (--outf=2).
type ClingoEngine struct {
	binary  string
	timeout time.Duration
}

// NewClingoEngine creates a clingo engine. binary is the path to the
// clingo executable; timeoutSeconds of 0 means no timeout.
func NewClingoEngine(binary string, timeoutSeconds int) *ClingoEngine {
	if binary == "" {
		binary = "clingo"
	}
	return &ClingoEngine{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

// Name returns the engine name
func (e *ClingoEngine) Name() string {
	return "clingo"
}

// Instructions returns the program-format guidance for the translation prompt
func (e *ClingoEngine) Instructions() string {
	return "a valid Clingo ASP program using standard clingo syntax (facts, rules, choice rules, integrity constraints)"
}

// clingoOutput mirrors the parts of clingo's --outf=2 JSON we consume
type clingoOutput struct {
	Call []struct {
		Witnesses []struct {
			Value []string `json:"Value"`
		} `json:"Witnesses"`
	} `json:"Call"`
	Result string `json:"Result"`
}

// runClingo executes the solver binary with the program on stdin.
// It is a variable so tests can substitute canned solver output.
var runClingo = func(ctx context.Context, binary string, args []string, program string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = strings.NewReader(program)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// Solve grounds and solves the program, returning one string per model
// in discovery order. Failures are folded into sentinel entries and
// never escalate.
func (e *ClingoEngine) Solve(program string) []string {
	config.DebugLog("[Clingo] Solving program (%d bytes)", len(program))

	ctx := context.Background()
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	// "-" reads the program from stdin as a single base unit.
	args := []string{"-", "--models=0", "--outf=2"}
	stdout, stderr, runErr := runClingo(ctx, e.binary, args, program)

	// clingo exits nonzero even on success (10 = SAT, 20 = UNSAT), so
	// the JSON verdict decides; the exec error only matters when no
	// usable output came back.
	var out clingoOutput
	if jsonErr := json.Unmarshal(stdout, &out); jsonErr != nil || out.Result == "" {
		detail := strings.TrimSpace(string(stderr))
		if detail == "" && runErr != nil {
			detail = runErr.Error()
		}
		if detail == "" {
			detail = "no output from solver"
		}
		config.DebugLog("[Clingo] Solver failed: %s", detail)
		return []string{clingoErrorPrefix + detail}
	}

	switch out.Result {
	case "SATISFIABLE", "OPTIMUM FOUND":
		var models []string
		for _, call := range out.Call {
			for _, witness := range call.Witnesses {
				models = append(models, strings.Join(witness.Value, " "))
			}
		}
		if len(models) == 0 {
			// Satisfiable with no witness should not happen under
			// --models=0; treat it as an empty single model.
			models = []string{""}
		}
		config.DebugLog("[Clingo] Found %d model(s)", len(models))
		return models
	case "UNSATISFIABLE":
		config.DebugLog("[Clingo] Program is unsatisfiable")
		return []string{UnsatMessage}
	default:
		detail := fmt.Sprintf("solver returned %s", out.Result)
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			detail = msg
		}
		return []string{clingoErrorPrefix + detail}
	}
}
