package inspect

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseLayout decodes a YAML layout document. The optional "mode" key picks
// the built-in layout to start from (list when absent); every other key
// present overrides the matching [Layout] field.
//
//	mode: csv
//	middle: " = "
//	max_width: 40
func ParseLayout(data []byte) (Layout, error) {
	var base struct {
		Mode string `yaml:"mode"`
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Layout{}, fmt.Errorf("%w: %s", ErrInvalidLayout, err)
	}
	m := List
	if base.Mode != "" {
		var err error
		if m, err = ParseMode(base.Mode); err != nil {
			return Layout{}, err
		}
	}
	l := m.Layout()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: %s", ErrInvalidLayout, err)
	}
	if l.MaxWidth < 0 {
		return Layout{}, fmt.Errorf("%w: negative max_width %d", ErrInvalidLayout, l.MaxWidth)
	}
	return l, nil
}

// LoadLayout reads a YAML layout document from r. See [ParseLayout].
func LoadLayout(r io.Reader) (Layout, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return Layout{}, err
	}
	return ParseLayout(buf.Bytes())
}

// LoadLayoutFile reads a YAML layout document from path.
func LoadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return ParseLayout(data)
}
