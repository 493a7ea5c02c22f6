package pipeline

import "testing"

func TestExtractProgramFencedWithASPTag(t *testing.T) {
	text := "Here is the program:\n```asp\nperson(a). person(b).\n:- next(a, b).\n```\nThat should do it."
	want := "person(a). person(b).\n:- next(a, b)."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramFencedWithClingoTag(t *testing.T) {
	text := "```clingo\n{ p(1..3) }.\n```"
	want := "{ p(1..3) }."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramFencedNoTag(t *testing.T) {
	text := "```\na.\nb.\n```"
	want := "a.\nb."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramNoFence(t *testing.T) {
	text := "  person(a). person(b).\n:- next(a, b).  \n"
	want := "person(a). person(b).\n:- next(a, b)."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramUnclosedFence(t *testing.T) {
	// A missing closing fence runs to the end of the response
	text := "```asp\na.\nb."
	want := "a.\nb."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramUnknownTagKept(t *testing.T) {
	// A first line that is not a known language tag is program text
	text := "```\nfact(one).\nfact(two).\n```"
	want := "fact(one).\nfact(two)."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramOnlyFirstBlock(t *testing.T) {
	text := "```asp\na.\n```\nsome prose\n```asp\nb.\n```"
	want := "a."

	if got := ExtractProgram(text); got != want {
		t.Errorf("ExtractProgram() = %q, want %q", got, want)
	}
}

func TestExtractProgramEmptyInput(t *testing.T) {
	if got := ExtractProgram(""); got != "" {
		t.Errorf("ExtractProgram(\"\") = %q, want empty", got)
	}
}
