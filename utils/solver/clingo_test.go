package solver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubClingo replaces the process runner for the duration of a test
func stubClingo(t *testing.T, stdout, stderr string, err error) *[]string {
	t.Helper()
	var gotArgs []string
	original := runClingo
	runClingo = func(ctx context.Context, binary string, args []string, program string) ([]byte, []byte, error) {
		gotArgs = args
		return []byte(stdout), []byte(stderr), err
	}
	t.Cleanup(func() { runClingo = original })
	return &gotArgs
}

func TestClingoSatisfiableSingleModel(t *testing.T) {
	out := `{"Call":[{"Witnesses":[{"Value":["in(dino,1)","in(ball,2)","in(pen,3)"]}]}],"Result":"SATISFIABLE"}`
	args := stubClingo(t, out, "", errors.New("exit status 10"))

	engine := NewClingoEngine("clingo", 0)
	models := engine.Solve("in(dino,1). in(ball,2). in(pen,3).")

	assert.Equal(t, []string{"in(dino,1) in(ball,2) in(pen,3)"}, models)
	assert.Contains(t, *args, "--models=0", "must request exhaustive enumeration")
	assert.Contains(t, *args, "--outf=2", "must request JSON output")
}

func TestClingoMultipleModelsInOrder(t *testing.T) {
	out := `{"Call":[{"Witnesses":[{"Value":["seat(a,1)"]},{"Value":["seat(a,3)"]}]}],"Result":"SATISFIABLE"}`
	stubClingo(t, out, "", errors.New("exit status 10"))

	engine := NewClingoEngine("clingo", 0)
	models := engine.Solve("ignored")

	assert.Equal(t, []string{"seat(a,1)", "seat(a,3)"}, models)
}

func TestClingoUnsatisfiable(t *testing.T) {
	out := `{"Call":[{}],"Result":"UNSATISFIABLE"}`
	stubClingo(t, out, "", errors.New("exit status 20"))

	engine := NewClingoEngine("clingo", 0)
	models := engine.Solve("a. :- a.")

	assert.Equal(t, []string{UnsatMessage}, models)
}

func TestClingoSyntaxErrorNeverRaises(t *testing.T) {
	stderr := "<stdin>:1:9-10: error: syntax error, unexpected ("
	stubClingo(t, "", stderr, errors.New("exit status 65"))

	engine := NewClingoEngine("clingo", 0)
	models := engine.Solve("broken((")

	assert.Len(t, models, 1)
	assert.True(t, strings.HasPrefix(models[0], "Clingo Error:"), "got %q", models[0])
	assert.Contains(t, models[0], "syntax error")
}

func TestClingoBinaryMissing(t *testing.T) {
	stubClingo(t, "", "", errors.New(`exec: "clingo": executable file not found in $PATH`))

	engine := NewClingoEngine("clingo", 0)
	models := engine.Solve("a.")

	assert.Len(t, models, 1)
	assert.True(t, strings.HasPrefix(models[0], "Clingo Error:"), "got %q", models[0])
	assert.Contains(t, models[0], "not found")
}

func TestClingoDefaultBinary(t *testing.T) {
	engine := NewClingoEngine("", 0)
	assert.Equal(t, "clingo", engine.binary)
}
