package nbtpath

import "github.com/jacoelho/nbtq/internal/reader"

// FormatError is returned for malformed path expressions.
type FormatError = reader.FormatError

// ErrFormat is wrapped by every FormatError.
var ErrFormat = reader.ErrFormat
