package inspect

import (
	"fmt"
	"reflect"
	"strconv"
)

// streamText returns the direct textual form of a streamable value. Method
// based forms (String, Error, Format) are used when methods is true;
// otherwise the value is formatted from its kind.
func streamText(v reflect.Value, methods bool) string {
	if methods {
		t := v.Type()
		if t.Implements(stringerType) || t.Implements(errorType) || t.Implements(formatterType) {
			return fmt.Sprint(v.Interface())
		}
	}
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.String:
		return v.String()
	case reflect.Pointer, reflect.UnsafePointer:
		if v.IsNil() {
			return "<nil>"
		}
		return "0x" + strconv.FormatUint(uint64(v.Pointer()), 16)
	default:
		return fmt.Sprintf("%v", v)
	}
}
