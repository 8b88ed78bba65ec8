package predef_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/es-debug/latte-runtime/internal/predef"
	"github.com/stretchr/testify/require"
)

type streams struct {
	out  *bytes.Buffer
	diag *bytes.Buffer
}

func newTestRuntime(t *testing.T, input string, opts ...predef.Option) (*predef.Runtime, streams) {
	t.Helper()

	s := streams{
		out:  &bytes.Buffer{},
		diag: &bytes.Buffer{},
	}

	return predef.New(strings.NewReader(input), s.out, s.diag, opts...), s
}

type processResult struct {
	stdout string
	stderr string
	code   int
}

// runHelperProcess re-runs the test binary limited to the tests matching
// pattern, with env set to "1" and stdin fed from input.
func runHelperProcess(t *testing.T, pattern, env, input string) processResult {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run="+pattern)
	cmd.Env = append(os.Environ(), env+"=1")
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "process must start and exit with a status")

		code = exitErr.ExitCode()
	}

	return processResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		code:   code,
	}
}
