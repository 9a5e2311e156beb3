package nbtpath

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/jacoelho/nbtq/internal/nbt"
)

// Path is a parsed path expression. It is immutable and safe for concurrent use.
type Path struct {
	text  string
	steps []Step
}

// String returns the text the path was parsed from.
func (p *Path) String() string {
	return p.text
}

// Steps returns a copy of the parsed steps in source order.
func (p *Path) Steps() []Step {
	return slices.Clone(p.steps)
}

// Canonical renders the steps back to path syntax.
func (p *Path) Canonical() string {
	var b strings.Builder
	for i, s := range p.steps {
		text := s.String()
		if i > 0 && text != "" && text[0] != '[' && text[0] != '{' {
			b.WriteByte('.')
		}
		b.WriteString(text)
	}
	return b.String()
}

// LogValue implements slog.LogValuer.
func (p *Path) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("text", p.text),
		slog.Int("steps", len(p.steps)),
	)
}

// Evaluate yields every tag the path selects from root. Results of earlier
// candidates come before results of later ones, in source order. The
// sequence is lazy and can be ranged over any number of times.
func (p *Path) Evaluate(root nbt.Tag) iter.Seq[nbt.Tag] {
	return func(yield func(nbt.Tag) bool) {
		p.walk(root, 0, yield)
	}
}

func (p *Path) walk(t nbt.Tag, depth int, yield func(nbt.Tag) bool) bool {
	if depth == len(p.steps) {
		return yield(t)
	}
	for next := range p.steps[depth].Select(t) {
		if !p.walk(next, depth+1, yield) {
			return false
		}
	}
	return true
}

// First returns the first selected tag.
func (p *Path) First(root nbt.Tag) (nbt.Tag, bool) {
	for t := range p.Evaluate(root) {
		return t, true
	}
	return nil, false
}

func (p *Path) Collect(root nbt.Tag) []nbt.Tag {
	return slices.Collect(p.Evaluate(root))
}

func (p *Path) Count(root nbt.Tag) int {
	n := 0
	for range p.Evaluate(root) {
		n++
	}
	return n
}
