package pipeline

import (
	"fmt"
	"strings"
)

// MockProvider implements the models.Provider interface for testing.
// It answers the translation prompt with TranslateResponse and the
// interpretation prompt with InterpretResponse.
type MockProvider struct {
	TranslateResponse string
	InterpretResponse string
	TranslateErr      error
	InterpretErr      error

	SendCount      int
	TranslateCount int
	InterpretCount int
	LastPrompt     string
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) SupportsModel(modelName string) bool {
	return true
}

func (m *MockProvider) Configure(apiKey string) error {
	return nil
}

func (m *MockProvider) SetVerbose(verbose bool) {}

func (m *MockProvider) SendPrompt(modelName string, prompt string) (string, error) {
	m.SendCount++
	m.LastPrompt = prompt

	if strings.Contains(prompt, "Solver's Output") {
		m.InterpretCount++
		if m.InterpretErr != nil {
			return "", m.InterpretErr
		}
		return m.InterpretResponse, nil
	}

	m.TranslateCount++
	if m.TranslateErr != nil {
		return "", m.TranslateErr
	}
	return m.TranslateResponse, nil
}

// MockEngine implements the solver.Engine interface for testing
type MockEngine struct {
	Models     []string
	SolveCount int
	LastInput  string
}

func (e *MockEngine) Name() string {
	return "mock"
}

func (e *MockEngine) Instructions() string {
	return "a mock logic program"
}

func (e *MockEngine) Solve(program string) []string {
	e.SolveCount++
	e.LastInput = program
	if e.Models == nil {
		return []string{fmt.Sprintf("solved(%d)", len(program))}
	}
	return e.Models
}
