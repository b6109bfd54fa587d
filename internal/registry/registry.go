// Package registry is a type-keyed instance lookup used by the composition
// root to hand shared services to independently built components.
package registry

import (
	"fmt"
	"reflect"
	"sync"
)

func New() *Registry {
	return &Registry{items: map[reflect.Type]interface{}{}}
}

type Registry struct {
	mtx   sync.RWMutex
	items map[reflect.Type]interface{}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register stores v as the instance for T, replacing any previous one.
func Register[T any](r *Registry, v T) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.items[typeOf[T]()] = v
}

// Get returns the instance registered for T. The zero value and false are
// returned when nothing is registered.
func Get[T any](r *Registry) (T, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	v, ok := r.items[typeOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// MustGet is Get for required services; it panics when T is missing.
func MustGet[T any](r *Registry) T {
	v, ok := Get[T](r)
	if !ok {
		panic(fmt.Sprintf("registry: %s is not registered", typeOf[T]()))
	}
	return v
}

func Unregister[T any](r *Registry) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.items, typeOf[T]())
}
