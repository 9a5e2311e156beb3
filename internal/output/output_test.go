package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jacoelho/nbtq/internal/nbt"
	"github.com/jacoelho/nbtq/internal/snbt"
)

func results() []nbt.Tag {
	return []nbt.Tag{
		nbt.NewCompound().Set("id", nbt.String("x")).Set("count", nbt.Int(1)),
		nbt.Byte(3),
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, results(), Options{Style: snbt.Default()}); err != nil {
		t.Fatal(err)
	}
	want := "{id:\"x\",count:1}\n3b\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, results(), Options{Format: FormatYAML}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, fragment := range []string{"id: x", "count: 1", "- 3"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Write(yaml) = %q, missing %q", got, fragment)
		}
	}
	id, count := strings.Index(got, "id: x"), strings.Index(got, "count: 1")
	if id >= 0 && count >= 0 && id > count {
		t.Errorf("Write(yaml) reordered keys: %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, results(), Options{Format: FormatJSON}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, fragment := range []string{`"id"`, `"x"`, `"count"`, "3"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Write(json) = %q, missing %s", got, fragment)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Write(json) = %q, want trailing newline", got)
	}
}

func TestUUIDRendering(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	tag := nbt.IntArrayFromUUID(id)

	if got := Text(tag, Options{Style: snbt.Default(), UUIDs: true}); got != id.String() {
		t.Errorf("Text(UUIDs) = %s, want %s", got, id)
	}
	if got := Text(tag, Options{Style: snbt.Default()}); !strings.HasPrefix(got, "[I;") {
		t.Errorf("Text() = %s, want int array", got)
	}

	var buf bytes.Buffer
	if err := Write(&buf, []nbt.Tag{nbt.NewCompound().Set("UUID", tag)}, Options{Format: FormatYAML, UUIDs: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), id.String()) {
		t.Errorf("Write(yaml, UUIDs) = %q, missing %s", buf.String(), id)
	}
}

func TestWriteCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatText, "2\n"},
		{FormatJSON, "{\"count\": 2}\n"},
		{FormatYAML, "count: 2\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteCount(&buf, 2, Options{Format: tt.format}); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.want {
			t.Errorf("WriteCount(%d) = %q, want %q", tt.format, buf.String(), tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %d, %v", f, err)
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(toml) error = %v", err)
	}
}
