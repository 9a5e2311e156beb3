package exit

import (
	"bytes"
	"os"
	"testing"
)

func TestSuccess(t *testing.T) {
	result := Success("usage")

	if result.ExitCode != CodeOK {
		t.Errorf("Success() ExitCode = %d, want %d", result.ExitCode, CodeOK)
	}
	if result.Message != "usage" {
		t.Errorf("Success() Message = %q, want %q", result.Message, "usage")
	}
	if result.Output != os.Stdout {
		t.Error("Success() expected output to stdout")
	}
}

func TestErrorf(t *testing.T) {
	result := Errorf("Error: %s at position %d", "bad path", 4)

	if result.ExitCode != CodeError {
		t.Errorf("Errorf() ExitCode = %d, want %d", result.ExitCode, CodeError)
	}
	if result.Message != "Error: bad path at position 4" {
		t.Errorf("Errorf() Message = %q", result.Message)
	}
	if result.Output != os.Stderr {
		t.Error("Errorf() expected output to stderr")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{
		Output:   &buf,
		ExitCode: CodeNoMatch,
		Message:  "test output",
	}

	result.Print()

	if buf.String() != "test output" {
		t.Errorf("Print() output = %q, want %q", buf.String(), "test output")
	}
}
