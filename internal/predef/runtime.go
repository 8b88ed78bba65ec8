// Package predef implements the predefined functions linked into every
// compiled Latte program: printing, reading and the runtime error abort.
package predef

import (
	"io"
	"os"
	"strconv"
	"sync"
)

type Option func(*Runtime)

// WithExit replaces the function Error uses to terminate the process.
func WithExit(exit func(code int)) Option {
	return func(r *Runtime) {
		r.exit = exit
	}
}

type Runtime struct {
	outMu *sync.Mutex
	out   io.Writer
	diag  io.Writer

	inMu *sync.Mutex
	in   *cursor

	exit func(code int)
}

func New(in io.Reader, out, diag io.Writer, opts ...Option) *Runtime {
	r := &Runtime{
		outMu: &sync.Mutex{},
		out:   out,
		diag:  diag,
		inMu:  &sync.Mutex{},
		in:    newCursor(in),
		exit:  os.Exit,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runtime) writeLine(w io.Writer, text string) {
	r.outMu.Lock()
	defer r.outMu.Unlock()

	// Stream failures are not reported to the program.
	_, _ = io.WriteString(w, text+"\n")
}

func (r *Runtime) PrintInt(n int) {
	r.writeLine(r.out, strconv.Itoa(n))
}

func (r *Runtime) PrintString(s string) {
	r.writeLine(r.out, s)
}

// ReadInt reads the next whitespace-delimited token and parses it as a
// decimal integer in the 32-bit range of a Latte int. The delimiter after
// the token stays in the stream.
func (r *Runtime) ReadInt() (int, error) {
	r.inMu.Lock()
	defer r.inMu.Unlock()

	token, err := r.in.token()
	if token != "" {
		r.in.afterToken = true
	}

	if err != nil {
		return 0, NewErrInput(token, err)
	}

	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, NewErrInput(token, err)
	}

	return int(n), nil
}

// ReadString returns the rest of the current line without its newline.
// When the previous read was ReadInt, the single delimiter it left behind
// is discarded first.
func (r *Runtime) ReadString() (string, error) {
	r.inMu.Lock()
	defer r.inMu.Unlock()

	text, err := r.in.line()
	if err != nil {
		return "", NewErrInput(text, err)
	}

	return text, nil
}

// Fail reports a runtime error on the diagnostic stream and returns
// ErrRuntime for the caller to act on.
func (r *Runtime) Fail() error {
	r.writeLine(r.diag, runtimeErrorMessage)

	return ErrRuntime{}
}

// Error reports a runtime error and terminates with status 1.
func (r *Runtime) Error() {
	_ = r.Fail()
	r.exit(1)
}

func Concat(s1, s2 string) string {
	return s1 + s2
}
