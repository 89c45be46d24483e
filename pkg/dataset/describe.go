package dataset

import (
	"fmt"
	"reflect"
	"runtime"
)

// FuncName renders a function reference for Describe output and error
// messages. Named functions render as "<import/path.Name>", absent (nil)
// functions as "<nil>", and values that carry no symbol name fall back to
// their type. It never fails.
func FuncName(fn any) string {
	if fn == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("<%T>", fn)
	}
	if v.IsNil() {
		return "<nil>"
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return "<" + f.Name() + ">"
	}
	return fmt.Sprintf("<%T>", fn)
}
