package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/nbtq/internal/document"
	"github.com/jacoelho/nbtq/internal/exit"
	"github.com/jacoelho/nbtq/internal/output"
	"github.com/jacoelho/nbtq/internal/snbt"
)

var (
	ErrNoArguments     = errors.New("no arguments provided")
	ErrNoPaths         = errors.New("no path expressions specified")
	ErrFirstAndCount   = errors.New("-first and -count cannot be combined")
	ErrUnknownStyle    = errors.New("unknown style")
	ErrSelectWithSNBT  = errors.New("-select requires json or yaml input")
	ErrStyleWithOutput = errors.New("-style only applies to text output")
)

// Style names a text rendering preset.
type Style string

const (
	StyleDefault  Style = "default"
	StyleExpanded Style = "expanded"
	StyleJSON     Style = "json"
	StylePreview  Style = "preview"
)

// Options maps the style to its SNBT formatting preset.
func (s Style) Options() (snbt.Options, error) {
	switch s {
	case StyleDefault, "":
		return snbt.Default(), nil
	case StyleExpanded:
		return snbt.DefaultExpanded(), nil
	case StyleJSON:
		return snbt.JSONLike(), nil
	case StylePreview:
		return snbt.Preview(), nil
	}
	return snbt.Options{}, fmt.Errorf("%w: %q", ErrUnknownStyle, string(s))
}

// Config represents the complete configuration for the nbtq tool.
type Config struct {
	// Path expressions, evaluated in order
	Paths []string
	// Check only validates the expressions
	Check bool
	Debug bool

	// Input
	File        string
	InputFormat document.Format
	Select      string

	// Output
	OutputFormat output.OutputFormat
	Style        Style
	UUIDs        bool
	First        bool
	Count        bool
}

// DocumentOptions returns the options used to load the input document.
func (c *Config) DocumentOptions() document.Options {
	return document.Options{
		Format: c.InputFormat,
		Select: c.Select,
	}
}

// OutputOptions returns the options used to render results.
func (c *Config) OutputOptions() (output.Options, error) {
	style, err := c.Style.Options()
	if err != nil {
		return output.Options{}, err
	}
	return output.Options{
		Format: c.OutputFormat,
		Style:  style,
		UUIDs:  c.UUIDs,
	}, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}

	if c.First && c.Count {
		return ErrFirstAndCount
	}

	if _, err := c.Style.Options(); err != nil {
		return err
	}

	if c.Style != StyleDefault && c.Style != "" && c.OutputFormat != output.FormatText {
		return ErrStyleWithOutput
	}

	if c.Select != "" && c.InputFormat == document.FormatSNBT {
		return ErrSelectWithSNBT
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		file       = fs.String("file", "-", "Input document, - for stdin")
		input      = fs.String("input", "auto", "Input format: auto, snbt, json or yaml")
		selectExpr = fs.String("select", "", "JSONPath expression choosing the root inside JSON or YAML input; keys come out sorted")
		out        = fs.String("output", "text", "Output format: text, json or yaml")
		style      = fs.String("style", string(StyleDefault), "Text style: default, expanded, json or preview")
		uuids      = fs.Bool("uuid", false, "Render four-element int arrays as UUIDs")
		first      = fs.Bool("first", false, "Print only the first result of each path")
		count      = fs.Bool("count", false, "Print only the number of results of each path")
		check      = fs.Bool("check", false, "Validate path expressions without reading input")
		debug      = fs.Bool("debug", false, "Enable debug logging on stderr")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	inputFormat, err := document.ParseFormat(*input)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	outputFormat, err := output.ParseFormat(*out)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	config := &Config{
		Paths:        fs.Args(),
		Check:        *check,
		Debug:        *debug,
		File:         *file,
		InputFormat:  inputFormat,
		Select:       strings.TrimSpace(*selectExpr),
		OutputFormat: outputFormat,
		Style:        Style(strings.ToLower(strings.TrimSpace(*style))),
		UUIDs:        *uuids,
		First:        *first,
		Count:        *count,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `nbtq - query NBT documents with path expressions

Usage: nbtq [options] <path> [path] ...

Options:
  --file FILE             Input document (default: stdin)
  --input FORMAT          Input format: auto, snbt, json, yaml (default: auto)
  --select EXPR           JSONPath expression choosing the root of JSON or YAML input
                          (keys of the selected value are printed in sorted order)
  --output FORMAT         Output format: text, json, yaml (default: text)
  --style STYLE           Text style: default, expanded, json, preview
  --uuid                  Render four-element int arrays as UUIDs
  --first                 Print only the first result of each path
  --count                 Print only the number of results of each path
  --check                 Validate path expressions without reading input
  --debug                 Enable debug logging on stderr
  -h, --help              Show this help message

Exit status is 0 when any path matched, 2 when nothing matched and 1 on error.

Examples:
  nbtq --file level.snbt 'Data.Player.Inventory[]'          # Every inventory item
  nbtq --file level.snbt 'Data.Player.Inventory[{Slot:0b}]' # Items matching a template
  nbtq --file level.snbt --count 'Data.Player.Inventory[]'  # Count items
  nbtq --file entity.json --uuid UUID                       # UUID from JSON input
  nbtq --check 'a.b[0]' 'c{d:1b}'                           # Validate expressions`
}
