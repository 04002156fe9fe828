package inspect

import (
	"reflect"
	"strconv"
)

// tuple renders a fixed-arity value: struct fields in declaration order.
func (c *Context) tuple(name string, v reflect.Value) {
	n := v.NumField()
	c.header(name, "Tuple with "+strconv.Itoa(n)+" elements")
	c.nested(name, func(yield func(reflect.Value) bool) {
		for i := range n {
			if !yield(v.Field(i)) {
				return
			}
		}
	})
}

// pair renders a map entry as a tuple of its key and value.
func (c *Context) pair(name string, k, v reflect.Value) {
	c.header(name, "Tuple with 2 elements")
	c.nested(name, func(yield func(reflect.Value) bool) {
		if yield(k) {
			yield(v)
		}
	})
}
