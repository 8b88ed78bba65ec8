package predef

import "fmt"

const runtimeErrorMessage = "runtime error"

// ErrInput is returned by reads when input is exhausted or malformed.
// Token holds whatever was consumed, possibly nothing.
type ErrInput struct {
	Token string
	err   error
}

func NewErrInput(token string, err error) error {
	return ErrInput{
		Token: token,
		err:   err,
	}
}

func (e ErrInput) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("read input: %s", e.err)
	}

	return fmt.Sprintf("read input %q: %s", e.Token, e.err)
}

func (e ErrInput) Unwrap() error {
	return e.err
}

type ErrRuntime struct{}

func (e ErrRuntime) Error() string {
	return runtimeErrorMessage
}
