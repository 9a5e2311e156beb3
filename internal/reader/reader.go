package reader

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	Escape      = '\\'
	DoubleQuote = '"'
	SingleQuote = '\''
)

// Reader is a cursor over a string. Positions are rune offsets.
type Reader struct {
	src    []rune
	cursor int
}

func New(s string) *Reader {
	return &Reader{src: []rune(s)}
}

// Cursor returns the offset of the next rune to be read.
func (r *Reader) Cursor() int {
	return r.cursor
}

// Len returns the input length in runes.
func (r *Reader) Len() int {
	return len(r.src)
}

// CanRead reports whether n more runes are available.
func (r *Reader) CanRead(n int) bool {
	return r.cursor+n <= len(r.src)
}

// Peek returns the rune at cursor+offset without advancing.
func (r *Reader) Peek(offset int) (rune, error) {
	i := r.cursor + offset
	if i < 0 || i >= len(r.src) {
		return 0, Errorf(r.cursor, "unexpected end of input at position %d", r.cursor)
	}
	return r.src[i], nil
}

// Read returns the current rune and advances past it.
func (r *Reader) Read() (rune, error) {
	c, err := r.Peek(0)
	if err != nil {
		return 0, err
	}
	r.cursor++
	return c, nil
}

// Remaining returns the unread part of the input.
func (r *Reader) Remaining() string {
	return string(r.src[r.cursor:])
}

// IsQuote reports whether c opens a quoted string.
func IsQuote(c rune) bool {
	return c == DoubleQuote || c == SingleQuote
}

// UnquotedAllowed reports whether c may appear in an unquoted string.
func UnquotedAllowed(c rune) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '_' || c == '-' ||
		c == '.' || c == '+' ||
		c == '∞'
}

func isAllowedNumber(c rune) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

// ReadWhile consumes the longest prefix whose runes satisfy cond. The result may be empty.
func (r *Reader) ReadWhile(cond func(rune) bool) string {
	start := r.cursor
	for r.cursor < len(r.src) && cond(r.src[r.cursor]) {
		r.cursor++
	}
	return string(r.src[start:r.cursor])
}

func (r *Reader) ReadUnquotedString() string {
	return r.ReadWhile(UnquotedAllowed)
}

// ReadString reads a quoted string when the next rune is a quote, otherwise an unquoted one.
func (r *Reader) ReadString() (string, error) {
	if !r.CanRead(1) {
		return "", nil
	}
	next := r.src[r.cursor]
	if IsQuote(next) {
		r.cursor++
		return r.ReadStringUntil(next)
	}
	return r.ReadUnquotedString(), nil
}

// ReadQuotedString is ReadString without the unquoted fallback.
func (r *Reader) ReadQuotedString() (string, error) {
	if !r.CanRead(1) {
		return "", nil
	}
	next := r.src[r.cursor]
	if !IsQuote(next) {
		return "", Errorf(r.cursor, "expected the string at position %d to be quoted, but got '%c'", r.cursor, next)
	}
	r.cursor++
	return r.ReadStringUntil(next)
}

// ReadStringUntil reads up to an unescaped end rune and consumes it.
// Supported escapes are \\, \<end>, \n and \uXXXX.
func (r *Reader) ReadStringUntil(end rune) (string, error) {
	var b strings.Builder
	escaped := false
	for r.cursor < len(r.src) {
		c := r.src[r.cursor]
		r.cursor++
		if !escaped {
			switch c {
			case Escape:
				escaped = true
			case end:
				return b.String(), nil
			default:
				b.WriteRune(c)
			}
			continue
		}

		escaped = false
		switch c {
		case end, Escape:
			b.WriteRune(c)
		case 'n':
			b.WriteByte('\n')
		case 'u':
			u, err := r.readUnicode()
			if err != nil {
				return "", err
			}
			b.WriteRune(u)
		default:
			r.cursor--
			return "", Errorf(r.cursor, "tried to escape '%c' at position %d, which is not allowed", c, r.cursor)
		}
	}
	return "", Errorf(r.cursor, "expected the string to end with '%c', but reached end of input", end)
}

func (r *Reader) readUnicode() (rune, error) {
	start := r.cursor
	if !r.CanRead(4) {
		return 0, Errorf(r.cursor, "invalid unicode escape sequence at position %d: reached end of input", start)
	}
	digits := string(r.src[r.cursor : r.cursor+4])
	r.cursor += 4

	var value rune
	for _, ch := range digits {
		var v rune
		switch {
		case ch >= '0' && ch <= '9':
			v = ch - '0'
		case ch >= 'A' && ch <= 'F':
			v = ch - 'A' + 10
		case ch >= 'a' && ch <= 'f':
			v = ch - 'a' + 10
		default:
			return 0, Errorf(start, "invalid unicode escape sequence: \\u%s", digits)
		}
		value = value<<4 | v
	}
	return value, nil
}

// ReadInt consumes digits, '.' and '-' and parses them as a base-10 32-bit integer.
func (r *Reader) ReadInt() (int, error) {
	start := r.cursor
	number := r.ReadWhile(isAllowedNumber)
	if number == "" {
		return 0, Errorf(start, "couldn't read any numeric characters starting at position %d", start)
	}
	n, err := strconv.ParseInt(number, 10, 32)
	if err != nil {
		return 0, Errorf(start, "invalid integer %q at position %d", number, start)
	}
	return int(n), nil
}

func (r *Reader) SkipWhitespace() {
	for r.cursor < len(r.src) && unicode.IsSpace(r.src[r.cursor]) {
		r.cursor++
	}
}

// Expect reads one rune and fails unless it equals c.
func (r *Reader) Expect(c rune) error {
	if !r.CanRead(1) {
		return Errorf(r.cursor, "expected '%c' at position %d, but reached end of input", c, r.cursor)
	}
	pos := r.cursor
	got := r.src[pos]
	r.cursor++
	if got != c {
		return Errorf(pos, "expected '%c' at position %d, but got '%c'", c, pos, got)
	}
	return nil
}
