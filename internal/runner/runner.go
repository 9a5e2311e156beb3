package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/jacoelho/nbtq/internal/config"
	"github.com/jacoelho/nbtq/internal/document"
	"github.com/jacoelho/nbtq/internal/exit"
	"github.com/jacoelho/nbtq/internal/nbt"
	"github.com/jacoelho/nbtq/internal/nbtpath"
	"github.com/jacoelho/nbtq/internal/output"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	caretFmt   = color.New(color.FgYellow).SprintFunc()
)

// Runner evaluates path expressions against one loaded document.
type Runner struct {
	config *config.Config
	output output.Options
	root   nbt.Tag
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOutput redirects result and diagnostic output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithInput replaces stdin when the configured file is "-".
func WithInput(stdin io.Reader) Option {
	return func(r *Runner) {
		r.stdin = stdin
	}
}

// New creates a Runner and loads the input document unless only checking paths.
// If creation fails, returns nil runner and exit result.
func New(cfg *config.Config, opts ...Option) (*Runner, *exit.Result) {
	outOpts, err := cfg.OutputOptions()
	if err != nil {
		return nil, exit.Errorf("Error: %v\n", err)
	}

	r := &Runner{
		config: cfg,
		output: outOpts,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	if cfg.Check {
		return r, nil
	}

	root, err := r.load()
	if err != nil {
		return nil, &exit.Result{
			Output:   r.stderr,
			ExitCode: exit.CodeError,
			Message:  fmt.Sprintf("Error loading document: %v\n", err),
		}
	}
	r.root = root

	r.logger.Debug("document loaded",
		slog.String("file", cfg.File),
		slog.String("root", root.Kind().String()),
	)

	return r, nil
}

func (r *Runner) load() (nbt.Tag, error) {
	opts := r.config.DocumentOptions()
	if r.config.File == "-" {
		return document.Read(r.stdin, r.config.File, opts)
	}
	return document.Load(r.config.File, opts)
}

// Run evaluates every path in order and returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	paths, ok := r.parseAll()
	if !ok {
		return exit.CodeError
	}

	if r.config.Check {
		for _, p := range paths {
			fmt.Fprintln(r.stdout, p.Canonical())
		}
		return exit.CodeOK
	}

	matched := false
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(r.stderr, "%s %v\n", errorLabel("Error:"), err)
			return exit.CodeError
		}

		n, err := r.evaluate(ctx, p)
		if err != nil {
			fmt.Fprintf(r.stderr, "%s %s: %v\n", errorLabel("Error:"), p, err)
			return exit.CodeError
		}

		r.logger.Debug("path evaluated", slog.Any("path", p), slog.Int("results", n))
		if n > 0 {
			matched = true
		}
	}

	if !matched {
		return exit.CodeNoMatch
	}
	return exit.CodeOK
}

// parseAll parses every expression, reporting each malformed one with a caret.
func (r *Runner) parseAll() ([]*nbtpath.Path, bool) {
	paths := make([]*nbtpath.Path, 0, len(r.config.Paths))
	ok := true

	for _, text := range r.config.Paths {
		p, err := nbtpath.Parse(text)
		if err != nil {
			ok = false
			r.reportParseError(text, err)
			continue
		}

		r.logger.Debug("path parsed", slog.Any("path", p), slog.String("canonical", p.Canonical()))
		paths = append(paths, p)
	}

	return paths, ok
}

func (r *Runner) reportParseError(text string, err error) {
	var formatErr *nbtpath.FormatError
	if errors.As(err, &formatErr) {
		fmt.Fprintf(r.stderr, "%s %s\n%s\n", errorLabel("Error:"), formatErr.Msg, caretFmt(formatErr.Caret(text)))
		return
	}
	fmt.Fprintf(r.stderr, "%s %v\n", errorLabel("Error:"), err)
}

// evaluate writes the results of p and returns how many there were.
func (r *Runner) evaluate(ctx context.Context, p *nbtpath.Path) (int, error) {
	switch {
	case r.config.Count:
		n := p.Count(r.root)
		return n, output.WriteCount(r.stdout, n, r.output)
	case r.config.First:
		t, ok := p.First(r.root)
		if !ok {
			return 0, nil
		}
		return 1, output.Write(r.stdout, []nbt.Tag{t}, r.output)
	}

	var results []nbt.Tag
	for t := range p.Evaluate(r.root) {
		if err := ctx.Err(); err != nil {
			return len(results), err
		}
		results = append(results, t)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return len(results), output.Write(r.stdout, results, r.output)
}
