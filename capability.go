package inspect

import (
	"fmt"
	"reflect"
	"sync"
)

// Strategy is the single rendering strategy selected for a type.
type Strategy int

const (
	// Unrenderable types are reported as "can't be printed."
	Unrenderable Strategy = iota
	// SelfDescribing types render through their [Describer] implementation.
	SelfDescribing
	// Streamable types render as a single name/value line.
	Streamable
	// TupleLike types render their fields positionally.
	TupleLike
	// ContainerLike types render their elements in iteration order.
	ContainerLike
)

var strategyNames = [...]string{
	Unrenderable:   "unrenderable",
	SelfDescribing: "self-describing",
	Streamable:     "streamable",
	TupleLike:      "tuple-like",
	ContainerLike:  "container-like",
}

// String returns the strategy name, or Strategy(n) for unknown values.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Capabilities are the facts probed from a type.
type Capabilities struct {
	// SelfDescribing: the type or a pointer to it implements [Describer].
	SelfDescribing bool
	// Streamable: the type has a direct textual form (fmt.Stringer, error,
	// fmt.Formatter, or a scalar, string or pointer kind).
	Streamable bool
	// TupleLike: the type has a static arity and is not ContainerLike.
	TupleLike bool
	// ContainerLike: the type is not Streamable and has a size plus a
	// traversal (slice, array, map, or Len() int with All() iter.Seq[V]).
	ContainerLike bool
	// NotRenderable: none of the above hold.
	NotRenderable bool
}

// Strategy returns the active strategy. Self-description wins over
// streaming, which wins over the structural strategies.
func (c Capabilities) Strategy() Strategy {
	switch {
	case c.SelfDescribing:
		return SelfDescribing
	case c.Streamable:
		return Streamable
	case c.TupleLike:
		return TupleLike
	case c.ContainerLike:
		return ContainerLike
	default:
		return Unrenderable
	}
}

var (
	describerType = reflect.TypeFor[Describer]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	formatterType = reflect.TypeFor[fmt.Formatter]()
	errorType     = reflect.TypeFor[error]()
)

type probeKey struct {
	t       reflect.Type
	methods bool
}

var probes sync.Map // probeKey -> Capabilities

// Probe reports the capabilities of t. Interface types have no capabilities
// of their own; values of interface type are classified by their dynamic
// type at render time. The result is computed once per type.
func Probe(t reflect.Type) Capabilities {
	return probe(t, true)
}

// ProbeOf reports the capabilities of T.
func ProbeOf[T any]() Capabilities {
	return Probe(reflect.TypeFor[T]())
}

// Classify returns the strategy used to render v. A nil v is streamable.
func Classify(v any) Strategy {
	if v == nil {
		return Streamable
	}
	return Probe(reflect.TypeOf(v)).Strategy()
}

// probe skips the method-based checks when methods is false, which is the
// case for values read through unexported fields.
func probe(t reflect.Type, methods bool) Capabilities {
	if t == nil {
		return Capabilities{Streamable: true}
	}
	key := probeKey{t: t, methods: methods}
	if c, ok := probes.Load(key); ok {
		return c.(Capabilities)
	}
	c := computeCapabilities(t, methods)
	probes.Store(key, c)
	return c
}

func computeCapabilities(t reflect.Type, methods bool) Capabilities {
	var c Capabilities
	if t.Kind() == reflect.Interface {
		c.NotRenderable = true
		return c
	}
	if methods {
		c.SelfDescribing = implements(t, describerType)
	}
	c.Streamable = hasStreamer(t, methods)
	c.ContainerLike = !c.Streamable && hasTraversal(t, methods)
	c.TupleLike = hasArity(t) && !c.ContainerLike
	c.NotRenderable = !(c.SelfDescribing || c.Streamable || c.TupleLike || c.ContainerLike)
	return c
}

// implements also accepts pointer-receiver implementations; the renderer
// takes the address of a copy to call them.
func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}

func hasStreamer(t reflect.Type, methods bool) bool {
	if methods && (t.Implements(stringerType) || t.Implements(errorType) || t.Implements(formatterType)) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Pointer, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func hasTraversal(t reflect.Type, methods bool) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return methods && seqMethods(t)
}

func hasArity(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Array:
		return true
	default:
		return false
	}
}

// seqMethods reports whether t has Len() int and All() returning an
// iter.Seq shaped func(func(V) bool).
func seqMethods(t reflect.Type) bool {
	l, ok := t.MethodByName("Len")
	if !ok || l.Type.NumIn() != 1 || l.Type.NumOut() != 1 || l.Type.Out(0).Kind() != reflect.Int {
		return false
	}
	a, ok := t.MethodByName("All")
	if !ok || a.Type.NumIn() != 1 || a.Type.NumOut() != 1 {
		return false
	}
	return isSeq(a.Type.Out(0))
}

func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}
