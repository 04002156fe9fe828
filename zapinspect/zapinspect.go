// Package zapinspect attaches inspect renderings to zap log entries. The
// values are only rendered when an entry is actually encoded, so fields on
// disabled levels cost nothing beyond the allocation of the field itself.
package zapinspect

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/inspect"
)

// Field returns a field whose value is the CSV rendering of values, without
// the trailing separator.
//
//	logger.Debug("state", zapinspect.Field("vars", "id, tags", id, tags))
func Field(key, names string, values ...any) zap.Field {
	return LayoutField(key, inspect.CSV.Layout(), names, values...)
}

// LayoutField is like [Field] with a caller-supplied layout.
func LayoutField(key string, l inspect.Layout, names string, values ...any) zap.Field {
	return zap.Stringer(key, rendering{layout: l, names: names, values: values})
}

// Object returns a field holding one entry per named value, each keyed by
// its name and holding that value's CSV rendering. Values beyond the name
// list are keyed by position.
func Object(key, names string, values ...any) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		l := inspect.CSV.Layout()
		split := inspect.SplitNames(names)
		for i, v := range values {
			name := positional(i)
			if i < len(split) && split[i] != "" {
				name = split[i]
			}
			enc.AddString(name, rendering{layout: l, names: name, values: []any{v}}.String())
		}
		return nil
	}))
}

type rendering struct {
	layout inspect.Layout
	names  string
	values []any
}

func (r rendering) String() string {
	s := r.layout.Render(r.names, r.values...)
	return strings.TrimSuffix(s, r.layout.End)
}

func positional(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
