package solver

import (
	"strconv"
	"strings"

	gophersat "github.com/crillab/gophersat/solver"

	"github.com/neurosym/logicpipe/utils/config"
)

const satErrorPrefix = "SAT Error: "

// SATEngine solves DIMACS CNF programs in-process with gophersat.
// It needs no external binary, at the cost of a lower-level program
// format than ASP.
type SATEngine struct{}

// NewSATEngine creates a new in-process SAT engine
func NewSATEngine() *SATEngine {
	return &SATEngine{}
}

// Name returns the engine name
func (e *SATEngine) Name() string {
	return "sat"
}

// Instructions returns the program-format guidance for the translation prompt
func (e *SATEngine) Instructions() string {
	return "a propositional formula in DIMACS CNF format (a 'p cnf <vars> <clauses>' header followed by one zero-terminated clause per line); add 'c' comment lines mapping each variable number to its meaning"
}

// Solve parses and solves the CNF program, enumerating every model.
// Each model is rendered as its signed literals in variable order,
// e.g. "1 -2 3". Failures become sentinel entries.
func (e *SATEngine) Solve(program string) []string {
	config.DebugLog("[SAT] Solving program (%d bytes)", len(program))

	pb, err := gophersat.ParseCNF(strings.NewReader(program))
	if err != nil {
		config.DebugLog("[SAT] Parse failed: %v", err)
		return []string{satErrorPrefix + err.Error()}
	}

	s := gophersat.New(pb)

	// Enumerate delivers each model as one binding per variable,
	// indexed from variable 1.
	modelCh := make(chan []bool)
	done := make(chan struct{})
	var models []string
	go func() {
		defer close(done)
		for m := range modelCh {
			models = append(models, formatModel(m))
		}
	}()

	total := s.Enumerate(modelCh, nil)
	<-done

	if total == 0 {
		config.DebugLog("[SAT] Program is unsatisfiable")
		return []string{UnsatMessage}
	}

	config.DebugLog("[SAT] Found %d model(s)", len(models))
	return models
}

// formatModel renders a model as space-separated signed literals
func formatModel(m []bool) string {
	lits := make([]string, len(m))
	for i, b := range m {
		if b {
			lits[i] = strconv.Itoa(i + 1)
		} else {
			lits[i] = "-" + strconv.Itoa(i+1)
		}
	}
	return strings.Join(lits, " ")
}
