package reader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat is the sentinel wrapped by every FormatError.
var ErrFormat = errors.New("format error")

// FormatError reports malformed input and the rune offset where it was detected.
type FormatError struct {
	Pos int
	Msg string
}

func (e *FormatError) Error() string {
	return e.Msg
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Caret renders src on one line and a caret under the error position on the next.
func (e *FormatError) Caret(src string) string {
	runes := []rune(src)
	pos := min(max(e.Pos, 0), len(runes))

	var b strings.Builder
	b.WriteString(src)
	b.WriteByte('\n')
	for _, r := range runes[:pos] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

// Errorf builds a FormatError at pos.
func Errorf(pos int, format string, args ...any) *FormatError {
	return &FormatError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
