package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/theory/jsonpath"

	"github.com/jacoelho/nbtq/internal/nbt"
	"github.com/jacoelho/nbtq/internal/snbt"
)

var (
	ErrUnknownFormat     = errors.New("unknown input format")
	ErrEmptyInput        = errors.New("input is empty")
	ErrSelectUnsupported = errors.New("JSONPath selection requires JSON or YAML input")
	ErrNotFound          = errors.New("JSONPath selection matched nothing")
)

// Format is the encoding of an input document.
type Format int

const (
	FormatAuto Format = iota
	FormatSNBT
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatSNBT:
		return "snbt"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat accepts auto, snbt, json, yaml and yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "snbt":
		return FormatSNBT, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat picks a format from the file extension, defaulting to SNBT.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatSNBT
	}
}

// Options controls how a document becomes a tag tree.
type Options struct {
	Format Format
	// Select is a JSONPath expression choosing the root inside JSON or YAML
	// input. Compound keys of a selected root are sorted.
	Select string
}

// Load reads the document at path; "-" reads stdin.
func Load(path string, opts Options) (nbt.Tag, error) {
	if path == "-" {
		return Read(os.Stdin, path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path, opts)
}

// Read decodes a document from r. name is used for format detection and messages.
func Read(r io.Reader, name string, opts Options) (nbt.Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	format := opts.Format
	if format == FormatAuto {
		format = DetectFormat(name)
	}

	tag, err := Decode(data, format, opts.Select)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tag, nil
}

// Decode converts raw document bytes to a tag tree.
func Decode(data []byte, format Format, selectExpr string) (nbt.Tag, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyInput
	}

	switch format {
	case FormatJSON, FormatYAML:
		if selectExpr != "" {
			return decodeSelected(data, selectExpr)
		}
		return decodeOrdered(data)
	case FormatSNBT, FormatAuto:
		if selectExpr != "" {
			return nil, ErrSelectUnsupported
		}
		return snbt.Parse(string(data))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// decodeOrdered keeps mapping key order, which becomes compound order.
func decodeOrdered(data []byte) (nbt.Tag, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return nbt.FromValue(v)
}

// decodeSelected applies a JSONPath expression and converts the first match.
// jsonpath only walks plain Go maps, so compound keys of the selected value
// come out sorted rather than in document order.
func decodeSelected(data []byte, expr string) (nbt.Tag, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %s: %w", expr, err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	results := path.Select(v)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, expr)
	}
	return nbt.FromValue(results[0])
}
