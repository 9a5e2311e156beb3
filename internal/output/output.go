package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/nbtq/internal/nbt"
	"github.com/jacoelho/nbtq/internal/snbt"
)

var ErrUnknownFormat = errors.New("unknown output format")

// OutputFormat selects how results are written.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
	FormatYAML
)

func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "snbt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls result rendering.
type Options struct {
	Format OutputFormat
	// Style applies to text output.
	Style snbt.Options
	// UUIDs renders four-element int arrays as UUID strings.
	UUIDs bool
}

// Write renders results. Text output writes one tag per line; JSON and YAML
// write a single sequence.
func Write(w io.Writer, results []nbt.Tag, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeEncoded(w, results, opts, yaml.JSON())
	case FormatYAML:
		return writeEncoded(w, results, opts)
	case FormatText:
		fallthrough
	default:
		return writeText(w, results, opts)
	}
}

// WriteCount writes the number of results in the selected format.
func WriteCount(w io.Writer, n int, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		_, err := fmt.Fprintf(w, "{\"count\": %d}\n", n)
		return err
	case FormatYAML:
		_, err := fmt.Fprintf(w, "count: %d\n", n)
		return err
	case FormatText:
		fallthrough
	default:
		_, err := fmt.Fprintf(w, "%d\n", n)
		return err
	}
}

func writeText(w io.Writer, results []nbt.Tag, opts Options) error {
	for _, t := range results {
		if _, err := fmt.Fprintln(w, Text(t, opts)); err != nil {
			return err
		}
	}
	return nil
}

// Text renders one tag as a text line.
func Text(t nbt.Tag, opts Options) string {
	if ia, ok := t.(nbt.IntArray); ok && opts.UUIDs {
		if u, ok := nbt.UUIDFromIntArray(ia); ok {
			return u.String()
		}
	}
	return snbt.Format(t, opts.Style)
}

func writeEncoded(w io.Writer, results []nbt.Tag, opts Options, encOpts ...yaml.EncodeOption) error {
	values := make([]any, 0, len(results))
	for _, t := range results {
		values = append(values, nbt.ToValue(t, nbt.ValueOptions{UUIDs: opts.UUIDs}))
	}

	payload, err := yaml.MarshalWithOptions(values, encOpts...)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if len(payload) > 0 && payload[len(payload)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
