package snbt

import "regexp"

// QuoteMode selects the quote character for keys and strings.
type QuoteMode uint8

const (
	// QuoteAutomatic uses double quotes unless the text contains only double quotes.
	QuoteAutomatic QuoteMode = iota
	QuoteDouble
	QuoteSingle
)

// Options controls Format.
type Options struct {
	Minified bool
	// JSONLike keeps whole floats recognisable by writing a trailing ".0".
	JSONLike       bool
	QuoteKeys      func(string) bool
	QuoteStrings   func(string) bool
	KeyQuote       QuoteMode
	StringQuote    QuoteMode
	NumberSuffixes bool
	ArrayPrefixes  bool
	// Newline replaces '\n' inside strings.
	Newline string
}

var plainKeyRe = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

func always(string) bool { return true }
func never(string) bool  { return false }

// Expanded returns a copy of o that writes one child per line.
func (o Options) Expanded() Options {
	o.Minified = false
	return o
}

func Default() Options {
	return Options{
		Minified:       true,
		QuoteKeys:      func(s string) bool { return !plainKeyRe.MatchString(s) },
		QuoteStrings:   always,
		KeyQuote:       QuoteAutomatic,
		StringQuote:    QuoteAutomatic,
		NumberSuffixes: true,
		ArrayPrefixes:  true,
		Newline:        `\n`,
	}
}

func DefaultExpanded() Options {
	return Default().Expanded()
}

func JSONLike() Options {
	return Options{
		Minified:     true,
		JSONLike:     true,
		QuoteKeys:    always,
		QuoteStrings: func(s string) bool { return s != "null" },
		KeyQuote:     QuoteDouble,
		StringQuote:  QuoteDouble,
		Newline:      `\n`,
	}
}

func JSONLikeExpanded() Options {
	return JSONLike().Expanded()
}

// Preview is a compact human-readable form; it does not parse back.
func Preview() Options {
	return Options{
		Minified:     true,
		QuoteKeys:    never,
		QuoteStrings: never,
		Newline:      "⏎",
	}
}

func MultilinePreview() Options {
	o := Preview()
	o.Newline = "\n"
	return o
}
