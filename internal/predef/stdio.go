package predef

import (
	"os"
	"sync"
)

var (
	stdioOnce sync.Once
	stdio     *Runtime
)

// Stdio returns the Runtime bound to the process standard streams.
func Stdio() *Runtime {
	stdioOnce.Do(func() {
		stdio = New(os.Stdin, os.Stdout, os.Stderr)
	})

	return stdio
}

func PrintInt(n int) {
	Stdio().PrintInt(n)
}

func PrintString(s string) {
	Stdio().PrintString(s)
}

func ReadInt() (int, error) {
	return Stdio().ReadInt()
}

func ReadString() (string, error) {
	return Stdio().ReadString()
}

func Error() {
	Stdio().Error()
}
