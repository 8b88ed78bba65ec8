package predef

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// cursor tracks the input position shared by token and line reads.
// afterToken is set once a token read leaves its delimiter pending.
type cursor struct {
	r          *bufio.Reader
	afterToken bool
}

func newCursor(in io.Reader) *cursor {
	return &cursor{
		r: bufio.NewReader(in),
	}
}

// isSpace reports the delimiters skipped by a token read, the ASCII
// whitespace of the C locale.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func (c *cursor) token() (string, error) {
	var sb strings.Builder

	for {
		b, err := c.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}

			return sb.String(), err
		}

		if isSpace(b) {
			if sb.Len() == 0 {
				continue
			}

			if err := c.r.UnreadByte(); err != nil {
				return sb.String(), err
			}

			return sb.String(), nil
		}

		sb.WriteByte(b)
	}
}

func (c *cursor) line() (string, error) {
	if c.afterToken {
		c.afterToken = false

		if _, err := c.r.ReadByte(); err != nil {
			return "", err
		}
	}

	text, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return text, nil
		}

		return text, err
	}

	return strings.TrimSuffix(text, "\n"), nil
}
