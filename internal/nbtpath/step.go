package nbtpath

import (
	"iter"
	"strconv"
	"strings"

	"github.com/jacoelho/nbtq/internal/nbt"
	"github.com/jacoelho/nbtq/internal/snbt"
)

// StepKind identifies the variant held by a Step.
type StepKind uint8

const (
	// StepName selects a named child of a compound.
	StepName StepKind = iota + 1
	// StepNameMatch selects a named child of a compound that matches Template.
	StepNameMatch
	// StepCompoundMatch keeps the current tag if it matches Template.
	StepCompoundMatch
	// StepListMatch selects list elements that match Template.
	StepListMatch
	// StepIndex selects one list or array element. Negative indexes wrap.
	StepIndex
	// StepAll selects every list or array element.
	StepAll
)

var stepKindNames = [...]string{
	StepName:          "name",
	StepNameMatch:     "name_match",
	StepCompoundMatch: "compound_match",
	StepListMatch:     "list_match",
	StepIndex:         "index",
	StepAll:           "all",
}

func (k StepKind) String() string {
	if int(k) < len(stepKindNames) && stepKindNames[k] != "" {
		return stepKindNames[k]
	}
	return "unknown"
}

// Step is one parsed unit of a path. Only the fields used by Kind are set.
type Step struct {
	Kind     StepKind
	Name     string
	Index    int
	Template *nbt.Compound
}

var emptyTemplate = nbt.NewCompound()

// template returns the template as a tag; a missing template matches any compound.
func (s Step) template() nbt.Tag {
	if s.Template == nil {
		return emptyTemplate
	}
	return s.Template
}

// compound is the read surface needed from compound tags.
type compound interface {
	nbt.Tag
	Get(name string) (nbt.Tag, bool)
	All() iter.Seq2[string, nbt.Tag]
}

func asCompound(t nbt.Tag) (compound, bool) {
	if t == nil || t.Kind() != nbt.KindCompound {
		return nil, false
	}
	c, ok := t.(compound)
	return c, ok
}

func asList(t nbt.Tag) (nbt.Sequence, bool) {
	if t == nil || t.Kind() != nbt.KindList {
		return nil, false
	}
	s, ok := t.(nbt.Sequence)
	return s, ok
}

// asIndexed accepts lists and typed arrays.
func asIndexed(t nbt.Tag) (nbt.Sequence, bool) {
	if t == nil || (t.Kind() != nbt.KindList && !t.Kind().IsArray()) {
		return nil, false
	}
	s, ok := t.(nbt.Sequence)
	return s, ok
}

// Select yields the tags this step produces from start, in order.
func (s Step) Select(start nbt.Tag) iter.Seq[nbt.Tag] {
	return func(yield func(nbt.Tag) bool) {
		switch s.Kind {
		case StepName:
			if c, ok := asCompound(start); ok {
				if child, ok := c.Get(s.Name); ok {
					yield(child)
				}
			}

		case StepNameMatch:
			if c, ok := asCompound(start); ok {
				child, _ := c.Get(s.Name)
				if Matches(s.template(), child) {
					yield(child)
				}
			}

		case StepCompoundMatch:
			if start != nil && Matches(s.template(), start) {
				yield(start)
			}

		case StepListMatch:
			l, ok := asList(start)
			if !ok {
				return
			}
			for elem := range l.All() {
				if Matches(s.template(), elem) && !yield(elem) {
					return
				}
			}

		case StepIndex:
			seq, ok := asIndexed(start)
			if !ok {
				return
			}
			i := s.Index
			if i < 0 {
				i += seq.Len()
			}
			if i >= 0 && i < seq.Len() {
				yield(seq.Index(i))
			}

		case StepAll:
			seq, ok := asIndexed(start)
			if !ok {
				return
			}
			for elem := range seq.All() {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// String renders the step in path syntax.
func (s Step) String() string {
	switch s.Kind {
	case StepName:
		return quoteName(s.Name)
	case StepNameMatch:
		return quoteName(s.Name) + formatTemplate(s.Template)
	case StepCompoundMatch:
		return formatTemplate(s.Template)
	case StepListMatch:
		return "[" + formatTemplate(s.Template) + "]"
	case StepIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	case StepAll:
		return "[]"
	}
	return ""
}

func formatTemplate(c *nbt.Compound) string {
	if c == nil {
		return "{}"
	}
	return snbt.Format(c, snbt.Default())
}

func quoteName(name string) string {
	if name != "" && !strings.ContainsFunc(name, func(c rune) bool { return !allowedInName(c) }) {
		return name
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range name {
		switch c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
