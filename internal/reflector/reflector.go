// Package reflector derives stable names for action types, used as labels
// in logs and metrics.
package reflector

import (
	"reflect"
	"sync"
)

var cache sync.Map // reflect.Type -> string

// TypeNameOf returns the qualified type name of x, e.g.
// "main.Increment". Pointer types resolve to their element type. The result
// is cached per type.
func TypeNameOf(x any) string {
	t := reflect.TypeOf(x)
	if t == nil {
		return "<nil>"
	}
	if name, ok := cache.Load(t); ok {
		return name.(string)
	}

	e := t
	for e.Kind() == reflect.Pointer {
		e = e.Elem()
	}
	name := e.String()

	cache.Store(t, name)
	return name
}
