package pipeline

import "strings"

const fence = "```"

// languageTags are fence language tags stripped from extracted code
var languageTags = []string{
	"asp",
	"clingo",
	"prolog",
	"lp",
	"dimacs",
	"cnf",
	"text",
	"plaintext",
}

// ExtractProgram pulls the program text out of a model response.
//
// If the response contains a fenced code block, the content of the
// first block is returned with any known language tag removed and
// surrounding whitespace trimmed. A block with no closing fence runs
// to the end of the text. If no fence is present the whole trimmed
// response is treated as the program.
func ExtractProgram(text string) string {
	start := strings.Index(text, fence)
	if start < 0 {
		return strings.TrimSpace(text)
	}

	inner := text[start+len(fence):]
	if end := strings.Index(inner, fence); end >= 0 {
		inner = inner[:end]
	}

	inner = stripLanguageTag(inner)
	return strings.TrimSpace(inner)
}

// stripLanguageTag drops the first line of a fenced block when it is a
// known language tag.
func stripLanguageTag(block string) string {
	firstLine := block
	rest := ""
	if idx := strings.IndexByte(block, '\n'); idx >= 0 {
		firstLine = block[:idx]
		rest = block[idx+1:]
	}

	tag := strings.ToLower(strings.TrimSpace(firstLine))
	for _, known := range languageTags {
		if tag == known {
			return rest
		}
	}
	return block
}
