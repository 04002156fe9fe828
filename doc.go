// Package inspect renders named Go values as human-readable text without
// per-type formatting code.
//
// The entry points take a comma-separated list of names, usually the
// source text of the values, followed by the values themselves:
//
//	inspect.AsList("a, b, c", true, 101, float32(1.5))
//	// a = true
//	// b = 101
//	// c = 1.5
//
//	inspect.AsCSV("v", []int{3, 5, 7})
//	// v ( Container with 3 elements ) , v[0] , 3 , v[1] , 5 , v[2] , 7 ,
//
// # Strategies
//
// Every value is classified by probing its type, and exactly one strategy
// applies, in this order:
//
//   - [SelfDescribing] → the type implements [Describer]
//   - [Streamable] → fmt.Stringer, error, fmt.Formatter, scalars, strings
//     and pointers (printed as an address)
//   - [TupleLike] → structs, rendered field by field
//   - [ContainerLike] → slices, arrays, maps (sorted by key, each entry a
//     key/value tuple) and types with Len() int and All() iter.Seq[V]
//   - [Unrenderable] → anything else renders as "<name> can't be printed."
//
// Use [Probe], [ProbeOf] or [Classify] to inspect the decision.
//
// Aggregates are written as a header followed by their elements one level
// deeper, named name[0], name[1] and so on.
//
// # Self-describing types
//
// A [Describer] receives the [Context] it is rendered in and returns its
// fields rendered through [Context.Render], which keeps the caller's layout
// and nests one level under the "( Object )" header:
//
//	func (f Foo) Describe(c *inspect.Context) string {
//		return c.Render("a, b, c", f.a, f.b, f.c)
//	}
//
// # Layouts
//
// A [Layout] holds the three separators that determine the output: the
// per-level indent, the name/value separator and the entry terminator.
// [List] and [CSV] select the built-in layouts. Custom layouts can be built
// directly or decoded from YAML with [ParseLayout] and [LoadLayout]:
//
//	mode: csv
//	middle: " = "
//	max_width: 40
//
// # Errors
//
// [Render], [AsList] and [AsCSV] never fail: surplus names are dropped and
// values without a name render with an empty one. [Write] and [Marshal]
// report problems with sentinel errors:
//
//   - [ErrUnsupportedMode] → unknown mode string
//   - [ErrNameCount] → name list does not match the values
//   - [ErrInvalidLayout] → undecodable layout document
package inspect
