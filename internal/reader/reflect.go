package reader

import (
	"fmt"
	"reflect"
	"strings"
)

// ResolveField walks path through t and returns the type of the final field.
func ResolveField(t reflect.Type, path []string) (reflect.Type, error) {
	for i, name := range path {
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("invalid field path: %s is not a struct", strings.Join(path[:i], "."))
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("invalid field path: %s", name)
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("cannot set field %s", name)
		}
		t = f.Type
	}
	return t, nil
}

// Assignable reports whether SetField can store a src value into a dst field.
func Assignable(src, dst reflect.Type) bool {
	if src.AssignableTo(dst) {
		return true
	}
	if dst.Kind() == reflect.Pointer {
		dst = dst.Elem()
	}
	switch {
	case src.AssignableTo(dst):
		return true
	case isInteger(src.Kind()) && isInteger(dst.Kind()):
		return true
	case isFloat(src.Kind()) && isFloat(dst.Kind()):
		return true
	case src.Kind() == dst.Kind() && src.ConvertibleTo(dst):
		return true
	}
	return false
}

// SetField stores value at path inside obj, allocating nil pointers on the way.
func SetField(obj reflect.Value, path []string, value any) error {
	for i := 0; i < len(path)-1; i++ {
		obj = obj.FieldByName(path[i])
		if !obj.IsValid() {
			return fmt.Errorf("invalid field path: %s", path[i])
		}
		if obj.Kind() == reflect.Pointer {
			if obj.IsNil() {
				obj.Set(reflect.New(obj.Type().Elem()))
			}
			obj = obj.Elem()
		}
	}
	field := obj.FieldByName(path[len(path)-1])
	if !field.IsValid() {
		return fmt.Errorf("invalid field path: %s", path[len(path)-1])
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field %s", strings.Join(path, "."))
	}

	src := reflect.ValueOf(value)
	if !src.IsValid() {
		return fmt.Errorf("cannot set field %s to nil", strings.Join(path, "."))
	}
	if field.Kind() == reflect.Pointer && !src.Type().AssignableTo(field.Type()) {
		ptr := reflect.New(field.Type().Elem())
		if err := assign(ptr.Elem(), src); err != nil {
			return fmt.Errorf("field %s: %w", strings.Join(path, "."), err)
		}
		field.Set(ptr)
		return nil
	}
	if err := assign(field, src); err != nil {
		return fmt.Errorf("field %s: %w", strings.Join(path, "."), err)
	}
	return nil
}

func assign(dst, src reflect.Value) error {
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case isInteger(src.Kind()) && isInteger(dst.Kind()):
		return assignInteger(dst, src)
	case isFloat(src.Kind()) && isFloat(dst.Kind()):
		v := src.Float()
		if dst.OverflowFloat(v) {
			return fmt.Errorf("value %v overflows %s", v, dst.Type())
		}
		dst.SetFloat(v)
	case src.Kind() == dst.Kind() && src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	return nil
}

func assignInteger(dst, src reflect.Value) error {
	if isUnsigned(src.Kind()) {
		v := src.Uint()
		if isUnsigned(dst.Kind()) {
			if dst.OverflowUint(v) {
				return fmt.Errorf("value %d overflows %s", v, dst.Type())
			}
			dst.SetUint(v)
			return nil
		}
		if v > 1<<63-1 || dst.OverflowInt(int64(v)) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetInt(int64(v))
		return nil
	}

	v := src.Int()
	if isUnsigned(dst.Kind()) {
		if v < 0 || dst.OverflowUint(uint64(v)) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetUint(uint64(v))
		return nil
	}
	if dst.OverflowInt(v) {
		return fmt.Errorf("value %d overflows %s", v, dst.Type())
	}
	dst.SetInt(v)
	return nil
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return isUnsigned(k)
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
