package snbt

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jacoelho/nbtq/internal/nbt"
	"github.com/jacoelho/nbtq/internal/reader"
	"github.com/jacoelho/nbtq/internal/stack"
)

// MaxDepth bounds container nesting.
const MaxDepth = 512

var (
	intRe          = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	byteRe         = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)b$`)
	shortRe        = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)s$`)
	longRe         = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)l$`)
	floatRe        = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+\.?|[0-9]*\.[0-9]+)(?:e[-+]?[0-9]+)?f$`)
	doubleRe       = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+\.?|[0-9]*\.[0-9]+)(?:e[-+]?[0-9]+)?d$`)
	doubleBareRe   = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+\.|[0-9]*\.[0-9]+)(?:e[-+]?[0-9]+)?$`)
	specialFloatRe = regexp.MustCompile(`^([-+]?)(∞|NaN)([dDfF]?)$`)
)

type opening struct {
	delim rune
	pos   int
}

type parser struct {
	r    *reader.Reader
	open *stack.Stack[opening]
}

func newParser(r *reader.Reader) *parser {
	return &parser{r: r, open: stack.NewWithCapacity[opening](8)}
}

// Parse parses s as a single tag. Only whitespace may follow it.
func Parse(s string) (nbt.Tag, error) {
	r := reader.New(s)
	t, err := ParseTag(r)
	if err != nil {
		return nil, err
	}
	r.SkipWhitespace()
	if r.CanRead(1) {
		return nil, reader.Errorf(r.Cursor(), "unexpected trailing data at position %d", r.Cursor())
	}
	return t, nil
}

// ParseTag parses one tag starting at the cursor of r and leaves the cursor
// right after it.
func ParseTag(r *reader.Reader) (nbt.Tag, error) {
	return newParser(r).value()
}

// ParseCompound is ParseTag restricted to compounds.
func ParseCompound(r *reader.Reader) (*nbt.Compound, error) {
	p := newParser(r)
	r.SkipWhitespace()
	c, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if c != '{' {
		return nil, reader.Errorf(r.Cursor(), "expected '{' at position %d, but got '%c'", r.Cursor(), c)
	}
	return p.compound()
}

// peek wraps end-of-input errors with the position of the innermost open container.
func (p *parser) peek(offset int) (rune, error) {
	c, err := p.r.Peek(offset)
	if err == nil {
		return c, nil
	}
	if top, ok := p.open.Peek(); ok {
		return 0, reader.Errorf(p.r.Cursor(), "unexpected end of input at position %d: '%c' opened at position %d is not closed", p.r.Cursor(), top.delim, top.pos)
	}
	return 0, err
}

func (p *parser) enter() error {
	pos := p.r.Cursor()
	delim, err := p.r.Read()
	if err != nil {
		return err
	}
	if p.open.Size() >= MaxDepth {
		return reader.Errorf(pos, "nesting deeper than %d at position %d", MaxDepth, pos)
	}
	p.open.Push(opening{delim: delim, pos: pos})
	return nil
}

func (p *parser) leave() {
	p.r.Read()
	p.open.Pop()
}

func (p *parser) value() (nbt.Tag, error) {
	p.r.SkipWhitespace()
	c, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	switch {
	case c == '{':
		return p.compound()
	case c == '[':
		if p.r.CanRead(3) {
			kind, _ := p.r.Peek(1)
			sep, _ := p.r.Peek(2)
			if sep == ';' && (kind == 'B' || kind == 'I' || kind == 'L') {
				return p.array(kind)
			}
		}
		return p.list()
	case reader.IsQuote(c):
		s, err := p.r.ReadString()
		if err != nil {
			return nil, err
		}
		return nbt.String(s), nil
	}

	start := p.r.Cursor()
	tok := p.r.ReadUnquotedString()
	if tok == "" {
		return nil, reader.Errorf(start, "expected a value at position %d, but got '%c'", start, c)
	}
	return scalar(tok), nil
}

func (p *parser) compound() (*nbt.Compound, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	c := nbt.NewCompound()

	p.r.SkipWhitespace()
	next, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if next == '}' {
		p.leave()
		return c, nil
	}

	for {
		p.r.SkipWhitespace()
		start := p.r.Cursor()
		next, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		key, err := p.r.ReadString()
		if err != nil {
			return nil, err
		}
		if key == "" && !reader.IsQuote(next) {
			return nil, reader.Errorf(start, "expected a key at position %d, but got '%c'", start, next)
		}

		p.r.SkipWhitespace()
		if _, err := p.peek(0); err != nil {
			return nil, err
		}
		if err := p.r.Expect(':'); err != nil {
			return nil, err
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)

		done, err := p.separator('}')
		if err != nil {
			return nil, err
		}
		if done {
			return c, nil
		}
	}
}

func (p *parser) list() (*nbt.List, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	l := nbt.NewList()

	p.r.SkipWhitespace()
	next, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if next == ']' {
		p.leave()
		return l, nil
	}

	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		l.Append(v)

		done, err := p.separator(']')
		if err != nil {
			return nil, err
		}
		if done {
			return l, nil
		}
	}
}

// separator consumes ',' or the closing rune and reports whether the container ended.
func (p *parser) separator(end rune) (bool, error) {
	p.r.SkipWhitespace()
	pos := p.r.Cursor()
	next, err := p.peek(0)
	if err != nil {
		return false, err
	}
	switch next {
	case end:
		p.leave()
		return true, nil
	case ',':
		p.r.Read()
		p.r.SkipWhitespace()
		if c, err := p.peek(0); err != nil {
			return false, err
		} else if c == end {
			return false, reader.Errorf(pos, "trailing ',' at position %d", pos)
		}
		return false, nil
	default:
		return false, reader.Errorf(pos, "expected ',' or '%c' at position %d, but got '%c'", end, pos, next)
	}
}

func (p *parser) array(kind rune) (nbt.Tag, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	p.r.Read() // kind
	p.r.Read() // ';'

	var values []int64
	p.r.SkipWhitespace()
	next, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if next == ']' {
		p.leave()
		return buildArray(kind, values), nil
	}

	for {
		p.r.SkipWhitespace()
		start := p.r.Cursor()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		n, err := arrayElement(kind, v, start)
		if err != nil {
			return nil, err
		}
		values = append(values, n)

		done, err := p.separator(']')
		if err != nil {
			return nil, err
		}
		if done {
			return buildArray(kind, values), nil
		}
	}
}

func arrayElement(kind rune, v nbt.Tag, pos int) (int64, error) {
	var n int64
	switch x := v.(type) {
	case nbt.Byte:
		n = int64(x)
	case nbt.Short:
		n = int64(x)
	case nbt.Int:
		n = int64(x)
	case nbt.Long:
		n = int64(x)
	default:
		return 0, reader.Errorf(pos, "can't insert %s into %c array at position %d", v.Kind(), kind, pos)
	}

	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	switch kind {
	case 'B':
		lo, hi = math.MinInt8, math.MaxInt8
	case 'I':
		lo, hi = math.MinInt32, math.MaxInt32
	}
	if n < lo || n > hi {
		return 0, reader.Errorf(pos, "value %d at position %d overflows %c array element", n, pos, kind)
	}
	return n, nil
}

func buildArray(kind rune, values []int64) nbt.Tag {
	switch kind {
	case 'B':
		out := make(nbt.ByteArray, len(values))
		for i, v := range values {
			out[i] = int8(v)
		}
		return out
	case 'I':
		out := make(nbt.IntArray, len(values))
		for i, v := range values {
			out[i] = int32(v)
		}
		return out
	default:
		out := make(nbt.LongArray, len(values))
		copy(out, values)
		return out
	}
}

// scalar interprets an unquoted token. Tokens that look numeric but are out
// of range stay strings.
func scalar(tok string) nbt.Tag {
	switch tok {
	case "true":
		return nbt.Byte(1)
	case "false":
		return nbt.Byte(0)
	}

	if m := specialFloatRe.FindStringSubmatch(tok); m != nil {
		return specialFloat(m[1], m[2], m[3], tok)
	}

	body := tok[:len(tok)-1]
	switch {
	case intRe.MatchString(tok):
		if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
			return nbt.Int(n)
		}
	case byteRe.MatchString(tok):
		if n, err := strconv.ParseInt(body, 10, 8); err == nil {
			return nbt.Byte(n)
		}
	case shortRe.MatchString(tok):
		if n, err := strconv.ParseInt(body, 10, 16); err == nil {
			return nbt.Short(n)
		}
	case longRe.MatchString(tok):
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return nbt.Long(n)
		}
	case floatRe.MatchString(tok):
		if f, err := strconv.ParseFloat(body, 32); err == nil {
			return nbt.Float(f)
		}
	case doubleRe.MatchString(tok):
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return nbt.Double(f)
		}
	case doubleBareRe.MatchString(tok):
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return nbt.Double(f)
		}
	}
	return nbt.String(tok)
}

func specialFloat(sign, value, suffix, tok string) nbt.Tag {
	var f float64
	switch value {
	case "NaN":
		if suffix == "" {
			return nbt.String(tok)
		}
		f = math.NaN()
	default:
		f = math.Inf(1)
		if sign == "-" {
			f = math.Inf(-1)
		}
	}
	if strings.EqualFold(suffix, "f") {
		return nbt.Float(f)
	}
	return nbt.Double(f)
}
