package reader

import (
	"errors"
	"strings"
	"testing"
)

func TestCanReadAndPeek(t *testing.T) {
	t.Parallel()

	r := New("ab")
	if !r.CanRead(2) {
		t.Fatal("CanRead(2) = false, want true")
	}
	if r.CanRead(3) {
		t.Fatal("CanRead(3) = true, want false")
	}

	c, err := r.Peek(1)
	if err != nil || c != 'b' {
		t.Fatalf("Peek(1) = %q, %v, want 'b', nil", c, err)
	}
	if r.Cursor() != 0 {
		t.Fatalf("Peek advanced cursor to %d", r.Cursor())
	}

	if _, err := r.Peek(2); err == nil {
		t.Fatal("Peek(2) past end expected error")
	}
}

func TestReadAdvances(t *testing.T) {
	t.Parallel()

	r := New("x∞")
	for _, want := range []rune{'x', '∞'} {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read() error: %v", err)
		}
		if got != want {
			t.Errorf("Read() = %q, want %q", got, want)
		}
	}
	if r.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", r.Cursor())
	}

	_, err := r.Read()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Read() at end error = %v, want *FormatError", err)
	}
	if !strings.Contains(fe.Msg, "end of input") {
		t.Errorf("Read() at end message = %q", fe.Msg)
	}
}

func TestReadWhile(t *testing.T) {
	t.Parallel()

	r := New("abc123 rest")
	got := r.ReadWhile(func(c rune) bool { return c != ' ' })
	if got != "abc123" {
		t.Errorf("ReadWhile() = %q, want %q", got, "abc123")
	}

	empty := r.ReadWhile(func(c rune) bool { return c == 'z' })
	if empty != "" {
		t.Errorf("ReadWhile() = %q, want empty", empty)
	}
	if r.Remaining() != " rest" {
		t.Errorf("Remaining() = %q", r.Remaining())
	}
}

func TestReadUnquotedString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"foo.bar[0]", "foo.bar"},
		{"A_b-c+1∞ tail", "A_b-c+1∞"},
		{"{x}", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := New(tt.input).ReadUnquotedString(); got != tt.want {
				t.Errorf("ReadUnquotedString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      string
		remaining string
		wantErr   bool
	}{
		{name: "double_quoted", input: `"hello world".x`, want: "hello world", remaining: ".x"},
		{name: "single_quoted", input: `'it"s'`, want: `it"s`},
		{name: "escaped_quote", input: `"a\"b"`, want: `a"b`},
		{name: "escaped_backslash", input: `"a\\b"`, want: `a\b`},
		{name: "newline_escape", input: `"a\nb"`, want: "a\nb"},
		{name: "unicode_escape", input: `"é∞"`, want: "é∞"},
		{name: "unquoted", input: `abc def`, want: "abc", remaining: " def"},
		{name: "empty_input", input: ``, want: ""},
		{name: "unterminated", input: `"abc`, wantErr: true},
		{name: "bad_escape", input: `"a\tb"`, wantErr: true},
		{name: "other_quote_escape", input: `"a\'b"`, wantErr: true},
		{name: "bad_unicode_digit", input: `"\u00g0"`, wantErr: true},
		{name: "short_unicode", input: `"\u00`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(tt.input)
			got, err := r.ReadString()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReadString(%q) expected error, got %q", tt.input, got)
				}
				if !errors.Is(err, ErrFormat) {
					t.Errorf("ReadString(%q) error %v does not wrap ErrFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadString(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ReadString(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if r.Remaining() != tt.remaining {
				t.Errorf("Remaining() = %q, want %q", r.Remaining(), tt.remaining)
			}
		})
	}
}

func TestBadEscapePosition(t *testing.T) {
	t.Parallel()

	_, err := New(`"ab\x"`).ReadString()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
	if fe.Pos != 4 {
		t.Errorf("Pos = %d, want 4", fe.Pos)
	}
}

func TestReadQuotedString(t *testing.T) {
	t.Parallel()

	if _, err := New("abc").ReadQuotedString(); err == nil {
		t.Error("ReadQuotedString on unquoted input expected error")
	}
	got, err := New(`'x'`).ReadQuotedString()
	if err != nil || got != "x" {
		t.Errorf("ReadQuotedString() = %q, %v", got, err)
	}
}

func TestReadInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "0]", want: 0},
		{input: "42]", want: 42},
		{input: "-1]", want: -1},
		{input: "-2147483648", want: -2147483648},
		{input: "2147483648", wantErr: true},
		{input: "1.5]", wantErr: true},
		{input: "--1", wantErr: true},
		{input: "]", wantErr: true},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.input).ReadInt()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReadInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpect(t *testing.T) {
	t.Parallel()

	r := New("]x")
	if err := r.Expect(']'); err != nil {
		t.Fatalf("Expect(']') error: %v", err)
	}

	err := r.Expect(']')
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expect mismatch error = %v, want *FormatError", err)
	}
	if fe.Pos != 1 {
		t.Errorf("Pos = %d, want 1", fe.Pos)
	}
	if r.Cursor() != 2 {
		t.Errorf("Expect did not advance past mismatch, cursor = %d", r.Cursor())
	}

	if err := r.Expect(']'); err == nil || !strings.Contains(err.Error(), "end of input") {
		t.Errorf("Expect at end error = %v", err)
	}
}

func TestSkipWhitespace(t *testing.T) {
	t.Parallel()

	r := New(" \t\n x")
	r.SkipWhitespace()
	if r.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", r.Cursor())
	}
	r.SkipWhitespace()
	if r.Cursor() != 4 {
		t.Errorf("SkipWhitespace on non-space moved cursor to %d", r.Cursor())
	}
}

func TestCaret(t *testing.T) {
	t.Parallel()

	err := &FormatError{Pos: 4, Msg: "boom"}
	want := "foo[\n    ^"
	if got := err.Caret("foo["); got != want {
		t.Errorf("Caret() = %q, want %q", got, want)
	}
}
