package inspect

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout holds the separators that fully determine the output format.
type Layout struct {
	// Indent is repeated once per nesting level before each entry.
	Indent string `yaml:"indent"`
	// Middle separates a name from its streamed value.
	Middle string `yaml:"middle"`
	// End follows every entry and every aggregate header.
	End string `yaml:"end"`
	// MaxWidth truncates streamed values wider than this many display
	// columns with "...". Zero means no limit.
	MaxWidth int `yaml:"max_width"`
}

// Layout returns the built-in layout for m. Unknown modes get the list
// layout.
func (m Mode) Layout() Layout {
	if m == CSV {
		return csvLayout
	}
	return listLayout
}

// Render renders each (name, value) pair with l. See [Render].
func (l Layout) Render(names string, values ...any) string {
	return render(l, -1, names, values)
}

// Write renders values with l and writes the text to w. It reports
// [ErrNameCount] when the name list does not match the values.
func (l Layout) Write(w io.Writer, names string, values ...any) error {
	if err := checkNames(names, values); err != nil {
		return err
	}
	_, err := io.WriteString(w, l.Render(names, values...))
	return err
}

func (l Layout) opening(depth int) string {
	if depth <= 0 || l.Indent == "" {
		return ""
	}
	return strings.Repeat(l.Indent, depth)
}

func (l Layout) clip(s string) string {
	if l.MaxWidth <= 0 || runewidth.StringWidth(s) <= l.MaxWidth {
		return s
	}
	return runewidth.Truncate(s, l.MaxWidth, "...")
}
