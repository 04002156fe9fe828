package inspect

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// container renders a variable-size value: slices and arrays in index
// order, maps in sorted key order with each entry as a (key, value) tuple,
// and Len/All types in the order All yields.
func (c *Context) container(name string, v reflect.Value) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		n := v.Len()
		c.header(name, containerHeader(n))
		c.nested(name, func(yield func(reflect.Value) bool) {
			for i := range n {
				if !yield(v.Index(i)) {
					return
				}
			}
		})
	case reflect.Map:
		// NaN keys cannot be looked up again, so entries are collected whole.
		var entries []mapEntry
		for it := v.MapRange(); it.Next(); {
			entries = append(entries, mapEntry{key: it.Key(), value: it.Value()})
		}
		slices.SortStableFunc(entries, func(a, b mapEntry) int {
			return compareKeys(a.key, b.key)
		})
		c.header(name, containerHeader(len(entries)))
		c.depth++
		for i, e := range entries {
			c.pair(elemName(name, i), e.key, e.value)
		}
		c.depth--
	default:
		n := int(v.MethodByName("Len").Call(nil)[0].Int())
		c.header(name, containerHeader(n))
		c.nested(name, seqOf(v.MethodByName("All").Call(nil)[0]))
	}
}

type mapEntry struct {
	key, value reflect.Value
}

func containerHeader(n int) string {
	return "Container with " + strconv.Itoa(n) + " elements"
}

// seqOf adapts a reflected iter.Seq[V] to a sequence of reflect.Values.
func seqOf(seq reflect.Value) func(yield func(reflect.Value) bool) {
	return func(yield func(reflect.Value) bool) {
		if seq.IsNil() {
			return
		}
		yt := seq.Type().In(0)
		fn := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0])).Convert(yt.Out(0))}
		})
		seq.Call([]reflect.Value{fn})
	}
}

// compareKeys orders map keys of the same type: numbers numerically,
// strings and booleans naturally, anything else by its printed form.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a, b = a.Elem(), b.Elem()
		if !a.IsValid() || !b.IsValid() {
			return cmp.Compare(boolRank(a.IsValid()), boolRank(b.IsValid()))
		}
		if a.Type() != b.Type() {
			return cmp.Compare(a.Type().String(), b.Type().String())
		}
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Struct:
		for i := range a.NumField() {
			if r := compareKeys(a.Field(i), b.Field(i)); r != 0 {
				return r
			}
		}
		return 0
	case reflect.Array:
		for i := range a.Len() {
			if r := compareKeys(a.Index(i), b.Index(i)); r != 0 {
				return r
			}
		}
		return 0
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
