package inspect

import (
	"reflect"
	"strconv"
	"strings"
)

// Context is the rendering state of one call: the layout in use and the
// current nesting depth. It is handed to [Describer] implementations so
// that their own output nests under the header written for them.
//
// A Context is only valid during the Describe call that received it.
type Context struct {
	layout Layout
	depth  int
	buf    strings.Builder
}

// Layout returns the layout being rendered with.
func (c *Context) Layout() Layout { return c.layout }

// Depth returns the nesting depth of the entry currently being rendered.
func (c *Context) Depth() int { return c.depth }

// Render renders (name, value) pairs one level deeper than c with the same
// layout and returns the text.
func (c *Context) Render(names string, values ...any) string {
	return render(c.layout, c.depth, names, values)
}

// render enters one level below depth, renders every pair and returns the
// text. The outermost call passes -1 so that top-level entries sit at
// depth zero.
func render(l Layout, depth int, names string, values []any) string {
	if len(values) == 0 {
		return ""
	}
	c := &Context{layout: l, depth: depth + 1}
	rest := names
	for _, v := range values {
		var name string
		name, rest = nextName(rest)
		c.value(name, reflect.ValueOf(v))
	}
	return c.buf.String()
}

func (c *Context) value(name string, v reflect.Value) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		c.stream(name, "<nil>")
		return
	}
	methods := v.CanInterface()
	switch probe(v.Type(), methods).Strategy() {
	case SelfDescribing:
		c.header(name, "Object")
		c.buf.WriteString(describe(c, v))
	case Streamable:
		c.stream(name, streamText(v, methods))
	case TupleLike:
		c.tuple(name, v)
	case ContainerLike:
		c.container(name, v)
	default:
		c.buf.WriteString(c.layout.opening(c.depth))
		c.buf.WriteString(name)
		c.buf.WriteString(" can't be printed.\n")
	}
}

func (c *Context) stream(name, text string) {
	c.buf.WriteString(c.layout.opening(c.depth))
	c.buf.WriteString(name)
	c.buf.WriteString(c.layout.Middle)
	c.buf.WriteString(c.layout.clip(text))
	c.buf.WriteString(c.layout.End)
}

func (c *Context) header(name, what string) {
	c.buf.WriteString(c.layout.opening(c.depth))
	c.buf.WriteString(name)
	c.buf.WriteString(" ( ")
	c.buf.WriteString(what)
	c.buf.WriteString(" )")
	c.buf.WriteString(c.layout.End)
}

// nested renders each element one level deeper, naming it name[i].
func (c *Context) nested(name string, elems func(yield func(reflect.Value) bool)) {
	c.depth++
	i := 0
	elems(func(e reflect.Value) bool {
		c.value(elemName(name, i), e)
		i++
		return true
	})
	c.depth--
}

func elemName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

func describe(c *Context, v reflect.Value) string {
	if d, ok := v.Interface().(Describer); ok {
		return d.Describe(c)
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p.Interface().(Describer).Describe(c)
}
