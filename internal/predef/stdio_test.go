package predef_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/es-debug/latte-runtime/internal/predef"
	"github.com/stretchr/testify/assert"
)

const stdioProgramEnv = "PREDEF_TEST_STDIO_PROGRAM"

// stdioProgram uses the package-level functions the way a compiled
// program does.
func stdioProgram() {
	n, err := predef.ReadInt()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	s, err := predef.ReadString()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	predef.PrintInt(n * 2)
	predef.PrintString(predef.Concat(s, "!"))

	if _, err := predef.ReadInt(); err == nil {
		fmt.Fprintln(os.Stderr, "input must be exhausted")
		os.Exit(2)
	}

	predef.Error()
	predef.PrintString("after")
}

func TestStdioProgram(t *testing.T) {
	if os.Getenv(stdioProgramEnv) == "1" {
		stdioProgram()

		return
	}

	res := runHelperProcess(t, "^TestStdioProgram$", stdioProgramEnv, "21\nhello world\n")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "42\nhello world!\n", res.stdout)
	assert.Equal(t, "runtime error\n", res.stderr)
}

func TestStdio(t *testing.T) {
	assert.Same(t, predef.Stdio(), predef.Stdio())
}
