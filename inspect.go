package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedMode = errors.New("unsupported mode")
	ErrNameCount       = errors.New("name count does not match value count")
	ErrInvalidLayout   = errors.New("invalid layout")
)

// Mode selects one of the built-in layouts.
type Mode string

const (
	List Mode = "list"
	CSV  Mode = "csv"
)

var modes = []Mode{List, CSV}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Modes returns all supported mode names.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode parses a mode string.
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Describer is implemented by types that render their own fields. The
// returned text is appended verbatim after the "( Object )" header, so
// implementations should build it with [Context.Render], which renders one
// level deeper than the header using the caller's layout:
//
//	func (f Foo) Describe(c *inspect.Context) string {
//		return c.Render("a, b, c", f.a, f.b, f.c)
//	}
type Describer interface {
	Describe(*Context) string
}

// Render renders each (name, value) pair using the layout of mode m and
// returns the accumulated text. names is a comma-separated list, typically
// the source text of the values. Unknown modes render as [List].
//
// Render is permissive: surplus names are discarded and values without a
// name render with an empty name. Use [Write] to have mismatches reported.
func Render(m Mode, names string, values ...any) string {
	return m.Layout().Render(names, values...)
}

// Write renders values with mode m and writes the text to w. Unlike
// [Render] it rejects unknown modes and name lists whose top-level entry
// count differs from len(values).
func Write(w io.Writer, m Mode, names string, values ...any) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	return m.Layout().Write(w, names, values...)
}

// Marshal renders values with mode m and returns the bytes.
func Marshal(m Mode, names string, values ...any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m, names, values...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkNames(names string, values []any) error {
	if n := countNames(names); n != len(values) {
		return fmt.Errorf("%w: %d names for %d values", ErrNameCount, n, len(values))
	}
	return nil
}
