package dynstack

import (
	"reflect"
	"sync"
	"unsafe"
)

// Initializer is implemented by element types that need more than the zero
// value to start life. Init is called on each element of a scoped buffer
// when it is allocated, and on single raw elements by Raw.Construct.
type Initializer interface {
	Init()
}

// Destroyer is implemented by element types with teardown work. Destroy is
// called on each element of a scoped buffer when it is released, and on
// single raw elements by Raw.Destruct.
type Destroyer interface {
	Destroy()
}

// initFunc turns a freshly carved span into live elements.
type initFunc[T any] func(data []T)

// initZeroed clears the span and then runs Init on every element.
func initZeroed[T any](data []T) {
	clear(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), uintptr(len(data))*sizeOf[T]()))
	construct(data)
}

// initForOverwrite runs Init on every element without clearing first.
// The caller is expected to overwrite every element.
func initForOverwrite[T any](data []T) {
	construct(data)
}

// initNone leaves the bytes alone.
func initNone[T any]([]T) {}

// construct runs Init on every element. If an Init panics, the elements
// already initialised are destroyed before the panic continues.
func construct[T any](data []T) {
	if len(data) == 0 {
		return
	}
	if _, ok := any(&data[0]).(Initializer); !ok {
		return
	}
	built := 0
	defer func() {
		if built != len(data) {
			destroy(data[:built])
		}
	}()
	for i := range data {
		any(&data[i]).(Initializer).Init()
		built++
	}
}

// destroy runs Destroy on every element, last index first.
func destroy[T any](data []T) {
	if len(data) == 0 {
		return
	}
	if _, ok := any(&data[0]).(Destroyer); !ok {
		return
	}
	for i := len(data) - 1; i >= 0; i-- {
		any(&data[i]).(Destroyer).Destroy()
	}
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func alignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// pointerTypes caches hasPointers per reflect.Type.
var pointerTypes sync.Map

// hasPointers reports whether a T holds anything the garbage collector
// traces. Such values are invisible to it once they live in a region.
func hasPointers[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := pointerTypes.Load(t); ok {
		return v.(bool)
	}
	has := typeHasPointers(t)
	pointerTypes.Store(t, has)
	return has
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
