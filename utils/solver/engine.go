// Package solver runs generated logic programs through a constraint
// solver and collects every model the solver finds.
package solver

import (
	"fmt"
	"sort"

	"github.com/neurosym/logicpipe/utils/config"
)

// UnsatMessage is the sentinel returned as the only element of a model
// set when the program has no solution.
const UnsatMessage = "UNSATISFIABLE (No solution found)"

// Engine solves a logic program and enumerates its models.
//
// Solve never returns an error: an unsatisfiable program yields a
// single UnsatMessage entry and a broken program yields a single
// "<engine> Error: ..." entry, so the pipeline can always hand the
// result to the interpretation stage.
type Engine interface {
	Name() string
	// Instructions describes the program format for the translation prompt.
	Instructions() string
	Solve(program string) []string
}

// EngineInfo describes a registered engine for listings
type EngineInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type engineFactory struct {
	description string
	create      func(cfg *config.SolverConfig) Engine
}

var engineFactories = map[string]engineFactory{
	"clingo": {
		description: "Answer Set Programming via the external clingo binary",
		create: func(cfg *config.SolverConfig) Engine {
			return NewClingoEngine(cfg.ClingoPath, cfg.TimeoutSeconds)
		},
	},
	"sat": {
		description: "In-process DIMACS CNF solving via gophersat",
		create: func(cfg *config.SolverConfig) Engine {
			return NewSATEngine()
		},
	},
}

// ForConfig builds the engine named by the solver configuration
func ForConfig(cfg *config.SolverConfig) (Engine, error) {
	return ForName(cfg.Engine, cfg)
}

// ForName builds a specific engine by name, using cfg for engine settings
func ForName(name string, cfg *config.SolverConfig) (Engine, error) {
	factory, exists := engineFactories[name]
	if !exists {
		return nil, fmt.Errorf("unknown solver engine %q (available: %v)", name, ListEngines())
	}
	return factory.create(cfg), nil
}

// ListEngines returns the names of all available engines
func ListEngines() []string {
	var names []string
	for name := range engineFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableEngines returns descriptions of all available engines
func AvailableEngines() []EngineInfo {
	var infos []EngineInfo
	for _, name := range ListEngines() {
		infos = append(infos, EngineInfo{
			Name:        name,
			Description: engineFactories[name].description,
		})
	}
	return infos
}
