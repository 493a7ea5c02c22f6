package pipeline

import "fmt"

// translatePromptTemplate instructs the model to emit only solver code
// in a fenced block. Parameters: format instructions, user query.
const translatePromptTemplate = `You are an expert in declarative logic programming.
Convert the following logic puzzle/description into %s.

User Query: "%s"

Requirements:
- Output ONLY the raw program inside a fenced code block.
- Do not add markdown explanations outside the code block.
- If the problem asks to find a solution, ensure the program produces solutions (models).`

// interpretPromptTemplate asks the model to explain the solver output.
// Parameters: user query, program, JSON-rendered model list.
const interpretPromptTemplate = `I have a logic puzzle.

1. The User's Question: "%s"
2. The Logic Rules:
%s
3. The Solver's Output (Models):
%s

Based on the Solver's Output, please give a clear, natural language answer to the user's question.
Explain which solution was found.`

// TranslationPrompt builds the prompt for the translation stage
func TranslationPrompt(query, formatInstructions string) string {
	return fmt.Sprintf(translatePromptTemplate, formatInstructions, query)
}

// InterpretationPrompt builds the prompt for the interpretation stage
func InterpretationPrompt(query, program, modelsJSON string) string {
	return fmt.Sprintf(interpretPromptTemplate, query, program, modelsJSON)
}
