package nbtpath

import (
	"github.com/jacoelho/nbtq/internal/reader"
	"github.com/jacoelho/nbtq/internal/snbt"
)

// Parse parses a path expression. Parsing stops at the end of text or at the
// first space outside a quoted name or template.
func Parse(text string) (*Path, error) {
	r := reader.New(text)
	var steps []Step

	for r.CanRead(1) {
		if c, _ := r.Peek(0); c == ' ' {
			break
		}

		step, err := parseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)

		if !r.CanRead(1) {
			break
		}
		if c, _ := r.Peek(0); c != ' ' && c != '[' && c != '{' {
			if err := r.Expect('.'); err != nil {
				return nil, err
			}
		}
	}

	return &Path{text: text, steps: steps}, nil
}

// TryParse reports whether text is a valid path instead of returning the error.
func TryParse(text string) (*Path, bool) {
	p, err := Parse(text)
	if err != nil {
		return nil, false
	}
	return p, true
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Path {
	p, err := Parse(text)
	if err != nil {
		panic("nbtpath: Parse(" + text + "): " + err.Error())
	}
	return p
}

// ParseStep parses text holding exactly one step.
func ParseStep(text string) (Step, error) {
	r := reader.New(text)
	step, err := parseStep(r)
	if err != nil {
		return Step{}, err
	}
	if r.CanRead(1) {
		return Step{}, reader.Errorf(r.Cursor(), "unexpected trailing data at position %d", r.Cursor())
	}
	return step, nil
}

func parseStep(r *reader.Reader) (Step, error) {
	c, err := r.Peek(0)
	if err != nil {
		return Step{}, err
	}

	switch c {
	case '{':
		tmpl, err := snbt.ParseCompound(r)
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: StepCompoundMatch, Template: tmpl}, nil

	case '[':
		r.Read()
		next, err := r.Peek(0)
		if err != nil {
			return Step{}, err
		}
		switch next {
		case '{':
			tmpl, err := snbt.ParseCompound(r)
			if err != nil {
				return Step{}, err
			}
			if err := r.Expect(']'); err != nil {
				return Step{}, err
			}
			return Step{Kind: StepListMatch, Template: tmpl}, nil
		case ']':
			r.Read()
			return Step{Kind: StepAll}, nil
		default:
			index, err := r.ReadInt()
			if err != nil {
				return Step{}, err
			}
			if err := r.Expect(']'); err != nil {
				return Step{}, err
			}
			return Step{Kind: StepIndex, Index: index}, nil
		}

	case reader.DoubleQuote:
		name, err := r.ReadString()
		if err != nil {
			return Step{}, err
		}
		return objectStep(r, name)
	}

	name, err := readUnquotedName(r)
	if err != nil {
		return Step{}, err
	}
	return objectStep(r, name)
}

// objectStep decides between a plain name and a name followed by a template.
func objectStep(r *reader.Reader, name string) (Step, error) {
	if c, err := r.Peek(0); err != nil || c != '{' {
		return Step{Kind: StepName, Name: name}, nil
	}
	tmpl, err := snbt.ParseCompound(r)
	if err != nil {
		return Step{}, err
	}
	return Step{Kind: StepNameMatch, Name: name, Template: tmpl}, nil
}

func readUnquotedName(r *reader.Reader) (string, error) {
	start := r.Cursor()
	name := r.ReadWhile(allowedInName)
	if name == "" {
		c, _ := r.Peek(0)
		return "", reader.Errorf(start, "couldn't read unquoted name at position %d, got '%c'", start, c)
	}
	return name, nil
}

func allowedInName(c rune) bool {
	switch c {
	case ' ', '"', '[', ']', '.', '{', '}':
		return false
	}
	return true
}
