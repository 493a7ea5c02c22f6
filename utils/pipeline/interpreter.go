package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
)

// Interpret asks the model to explain the solver's raw output as a
// natural-language answer to the original query.
func Interpret(provider models.Provider, modelName, query, program string, modelSet []string) (string, error) {
	modelsJSON, err := json.Marshal(modelSet)
	if err != nil {
		return "", fmt.Errorf("rendering models: %w", err)
	}

	prompt := InterpretationPrompt(query, program, string(modelsJSON))
	config.DebugLog("[Interpreter] Sending prompt to %s (%d characters)", modelName, len(prompt))

	explanation, err := provider.SendPrompt(modelName, prompt)
	if err != nil {
		return "", fmt.Errorf("interpretation failed: %w", err)
	}
	return explanation, nil
}
