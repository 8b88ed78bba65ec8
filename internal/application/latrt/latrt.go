package latrt

import (
	"fmt"
	"io"
	"os"

	"github.com/es-debug/latte-runtime/internal/domain"
	"github.com/es-debug/latte-runtime/internal/predef"
	"gopkg.in/yaml.v3"
)

// Start runs the latrt command with args, excluding the program name.
// Usage and flag diagnostics go to stderr.
func Start(args []string, stdout, stderr io.Writer) error {
	flags, err := readCMDFlags(args, stderr)
	if err != nil {
		return err
	}

	if flags.help {
		return nil
	}

	sigs := make([]domain.Signature, 0)
	for _, s := range predef.Signatures() {
		if s.Internal && !flags.internal {
			continue
		}

		sigs = append(sigs, s)
	}

	if flags.output == "" {
		return writeSignatures(stdout, sigs, flags.format)
	}

	f, err := os.OpenFile(flags.output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	if err := writeSignatures(f, sigs, flags.format); err != nil {
		_ = f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	return nil
}

func writeSignatures(w io.Writer, sigs []domain.Signature, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(sigs); err != nil {
			return fmt.Errorf("encode signatures: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode signatures: %w", err)
		}

		return nil
	}

	for _, s := range sigs {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return fmt.Errorf("write signatures: %w", err)
		}
	}

	return nil
}
