package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or table)", s)
	}
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &JSONFormatter{}
	}
}

// Print writes data in format. A transport Result is unwrapped first:
// Raw text is written as is whatever the format.
func Print(w io.Writer, format Format, data any) error {
	switch r := data.(type) {
	case connection.Raw:
		s := string(r)
		if s != "" && !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		_, err := io.WriteString(w, s)
		return err
	case connection.Structured:
		if format == FormatJSON {
			return NewFormatter(format).Format(w, r)
		}
		data = r.Value
	}
	return NewFormatter(format).Format(w, data)
}
