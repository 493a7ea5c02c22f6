package pipeline

import (
	"fmt"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/neurosym/logicpipe/utils/models"
	"github.com/neurosym/logicpipe/utils/solver"
)

// Translate asks the model to convert a natural-language puzzle into a
// program in the engine's language and extracts the program text from
// the response. The query is assumed non-empty; callers guard that.
func Translate(provider models.Provider, modelName, query string, engine solver.Engine) (string, error) {
	prompt := TranslationPrompt(query, engine.Instructions())
	config.DebugLog("[Translator] Sending prompt to %s (%d characters)", modelName, len(prompt))

	response, err := provider.SendPrompt(modelName, prompt)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	program := ExtractProgram(response)
	config.DebugLog("[Translator] Extracted program (%d bytes)", len(program))
	return program, nil
}
