package snbt

import (
	"math"
	"strconv"
	"strings"

	"github.com/jacoelho/nbtq/internal/nbt"
)

const indent = "    "

// Format renders t according to opts.
func Format(t nbt.Tag, opts Options) string {
	if opts.QuoteKeys == nil {
		opts.QuoteKeys = never
	}
	if opts.QuoteStrings == nil {
		opts.QuoteStrings = never
	}

	f := formatter{opts: opts}
	f.tag(t, 0)
	return f.b.String()
}

type formatter struct {
	b    strings.Builder
	opts Options
}

func (f *formatter) tag(t nbt.Tag, depth int) {
	switch x := t.(type) {
	case nbt.Byte:
		f.integer(int64(x), "b")
	case nbt.Short:
		f.integer(int64(x), "s")
	case nbt.Int:
		f.integer(int64(x), "")
	case nbt.Long:
		f.integer(int64(x), "L")
	case nbt.Float:
		f.float(float64(x), 32, "f")
	case nbt.Double:
		f.float(float64(x), 64, "d")
	case nbt.String:
		f.str(string(x), f.opts.QuoteStrings(string(x)), f.opts.StringQuote)
	case nbt.ByteArray:
		f.array("B", "b", x.Len(), func(i int) int64 { return int64(x[i]) })
	case nbt.IntArray:
		f.array("I", "", x.Len(), func(i int) int64 { return int64(x[i]) })
	case nbt.LongArray:
		f.array("L", "L", x.Len(), func(i int) int64 { return x[i] })
	case *nbt.List:
		f.list(x, depth)
	case *nbt.Compound:
		f.compound(x, depth)
	case nil:
		f.b.WriteString("null")
	}
}

func (f *formatter) integer(n int64, suffix string) {
	f.b.WriteString(strconv.FormatInt(n, 10))
	if f.opts.NumberSuffixes {
		f.b.WriteString(suffix)
	}
}

func (f *formatter) float(v float64, bits int, suffix string) {
	switch {
	case math.IsNaN(v):
		f.b.WriteString("NaN")
	case math.IsInf(v, 1):
		f.b.WriteString("∞")
	case math.IsInf(v, -1):
		f.b.WriteString("-∞")
	default:
		s := strconv.FormatFloat(v, 'g', -1, bits)
		if f.opts.JSONLike && !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		f.b.WriteString(s)
	}
	if f.opts.NumberSuffixes {
		f.b.WriteString(suffix)
	}
}

func (f *formatter) str(s string, quoted bool, mode QuoteMode) {
	if !quoted {
		f.b.WriteString(strings.ReplaceAll(s, "\n", f.opts.Newline))
		return
	}

	q := quoteChar(s, mode)
	f.b.WriteRune(q)
	for _, c := range s {
		switch c {
		case '\\', q:
			f.b.WriteByte('\\')
			f.b.WriteRune(c)
		case '\n':
			f.b.WriteString(f.opts.Newline)
		default:
			f.b.WriteRune(c)
		}
	}
	f.b.WriteRune(q)
}

func quoteChar(s string, mode QuoteMode) rune {
	switch mode {
	case QuoteDouble:
		return '"'
	case QuoteSingle:
		return '\''
	}
	if strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		return '\''
	}
	return '"'
}

func (f *formatter) sep() string {
	if f.opts.Minified {
		return ","
	}
	return ", "
}

func (f *formatter) array(prefix, suffix string, n int, at func(int) int64) {
	f.b.WriteByte('[')
	if f.opts.ArrayPrefixes {
		f.b.WriteString(prefix)
		f.b.WriteByte(';')
		if !f.opts.Minified && n > 0 {
			f.b.WriteByte(' ')
		}
	}
	for i := range n {
		if i > 0 {
			f.b.WriteString(f.sep())
		}
		f.integer(at(i), suffix)
	}
	f.b.WriteByte(']')
}

func (f *formatter) newline(depth int) {
	if f.opts.Minified {
		return
	}
	f.b.WriteByte('\n')
	f.b.WriteString(strings.Repeat(indent, depth))
}

func (f *formatter) list(l *nbt.List, depth int) {
	f.b.WriteByte('[')
	if l.Len() == 0 {
		f.b.WriteByte(']')
		return
	}
	i := 0
	for elem := range l.All() {
		if i > 0 {
			f.b.WriteByte(',')
		}
		f.newline(depth + 1)
		f.tag(elem, depth+1)
		i++
	}
	f.newline(depth)
	f.b.WriteByte(']')
}

func (f *formatter) compound(c *nbt.Compound, depth int) {
	f.b.WriteByte('{')
	if c.Len() == 0 {
		f.b.WriteByte('}')
		return
	}
	i := 0
	for name, child := range c.All() {
		if i > 0 {
			f.b.WriteByte(',')
		}
		f.newline(depth + 1)
		f.str(name, f.opts.QuoteKeys(name), f.opts.KeyQuote)
		f.b.WriteByte(':')
		if !f.opts.Minified {
			f.b.WriteByte(' ')
		}
		f.tag(child, depth+1)
		i++
	}
	f.newline(depth)
	f.b.WriteByte('}')
}
