package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tagpages/internal/config"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// resolveFormat picks the output format: the flag if set, then the
// configured default, then table on a terminal and json otherwise.
func resolveFormat(flagValue string, cfg *config.Config, w io.Writer) (string, error) {
	format := flagValue
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if format == "" {
		format = config.FormatJSON
		if f, ok := w.(*os.File); ok && isTerminal(f) {
			format = config.FormatTable
		}
	}

	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: got %q", config.ErrInvalidOutputFormat, format)
	}
}

// writeStructured renders v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
