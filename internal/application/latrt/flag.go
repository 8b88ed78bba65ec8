package latrt

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type cmdFlags struct {
	internal bool
	format   string
	output   string
	help     bool
}

func readCMDFlags(args []string, stderr io.Writer) (cmdFlags, error) {
	var (
		signatures bool
		internal   bool
		format     string
		output     string
		help       bool
	)

	fs := flag.NewFlagSet("latrt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&signatures, "signatures", false, "print predefined function signatures")
	fs.BoolVar(&signatures, "s", false, "print predefined function signatures")

	fs.BoolVar(&internal, "include-internal", false, "include functions not callable from source")
	fs.BoolVar(&internal, "i", false, "include functions not callable from source")

	fs.StringVar(&format, "format", formatText, "output format: text or yaml")
	fs.StringVar(&format, "fmt", formatText, "output format: text or yaml")

	fs.StringVar(&output, "output", "", "file for output")
	fs.StringVar(&output, "o", "", "file for output")

	fs.BoolVar(&help, "help", false, "commands info")
	fs.BoolVar(&help, "h", false, "commands info")

	if err := fs.Parse(args); err != nil {
		return cmdFlags{}, fmt.Errorf("parse flags: %w", err)
	}

	if help {
		fs.PrintDefaults()

		return cmdFlags{
			help: true,
		}, nil
	}

	if !signatures {
		return cmdFlags{}, ErrNoCommand{}
	}

	format = strings.ToLower(format)
	if format != formatText && format != formatYAML {
		return cmdFlags{}, NewErrUnknownFormat(format)
	}

	return cmdFlags{
		internal: internal,
		format:   format,
		output:   output,
	}, nil
}
