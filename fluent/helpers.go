// Package fluent provides internal invocation helpers shared by the chain
// views. They translate loosely-typed call arguments into reflect calls and
// split trailing error returns off result lists.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: argument-shape failures name the member for uniform reporting.
//   - Performance: one []reflect.Value allocation per call; no retained state.
//   - Readability: explicit naming, minimal nesting, consistent style.
package fluent

import (
	"fmt"
	"reflect"
)

// errorType is the reflect.Type of the error interface, used to detect
// trailing error returns on inner methods and constructors.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// construct invokes the user-supplied constructor exactly once and
// normalizes the produced inner builder for method enumeration (a struct
// result is copied into fresh addressable storage so pointer-receiver
// methods participate; a pointer result is used directly).
//
// Accepted constructor shapes: func(...) T and func(...) (T, error).
// A non-nil constructor error is returned unmodified; every shape violation
// is reported with ErrBadConstructor.
//
// Complexity: O(len(args)) + the constructor's own cost.
func construct(constructor any, args []any) (reflect.Value, error) {
	fn := reflect.ValueOf(constructor)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, fmt.Errorf("New: constructor is not a func: %w", ErrBadConstructor)
	}
	ft := fn.Type()
	if ft.NumOut() == 0 || ft.NumOut() > 2 {
		return reflect.Value{}, fmt.Errorf("New: constructor must return the builder (optionally with error): %w", ErrBadConstructor)
	}
	if ft.NumOut() == 2 && !ft.Out(1).Implements(errorType) {
		return reflect.Value{}, fmt.Errorf("New: constructor second return must be error: %w", ErrBadConstructor)
	}

	out, err := callMember("constructor", fn, args)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("New: %s: %w", err, ErrBadConstructor)
	}
	rest, err := splitTrailingError(out)
	if err != nil {
		// The constructor's own failure passes through unmodified.
		return reflect.Value{}, err
	}

	produced := firstResult(rest)
	if produced == nil {
		return reflect.Value{}, fmt.Errorf("New: constructor produced nil builder: %w", ErrBadConstructor)
	}
	inner := reflect.ValueOf(produced)
	switch inner.Kind() {
	case reflect.Ptr:
		if inner.IsNil() {
			return reflect.Value{}, fmt.Errorf("New: constructor produced nil builder: %w", ErrBadConstructor)
		}
		return inner, nil
	case reflect.Struct:
		// Re-home the copy so addressable fields and pointer methods exist.
		p := reflect.New(inner.Type())
		p.Elem().Set(inner)
		return p, nil
	default:
		// Non-struct builders (named func/map/etc.) expose value methods only.
		return inner, nil
	}
}

// callMember invokes the bound method fn with the given loosely-typed args.
// It validates arity and assignability first so dispatch surfaces a regular
// error instead of a reflect panic; argument VALUES are never interpreted.
//
// Parameters:
//   - name: member name, used only for error context.
//   - fn:   bound method value (from the dispatch table).
//   - args: caller-supplied arguments.
//
// Returns the raw result list, or an error describing the shape mismatch.
//
// Complexity: O(len(args)) + the inner method's own cost.
func callMember(name string, fn reflect.Value, args []any) ([]reflect.Value, error) {
	ft := fn.Type()

	// Arity check; variadic methods accept any suffix length.
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%s: want at least %d arg(s), got %d", name, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%s: want %d arg(s), got %d", name, fixed, len(args))
	}

	// Convert each argument to the parameter type it must satisfy.
	in := make([]reflect.Value, len(args))
	var i int
	for i = 0; i < len(args); i++ {
		want := paramType(ft, i)
		v, err := argValue(args[i], want)
		if err != nil {
			return nil, fmt.Errorf("%s: arg %d: %w", name, i, err)
		}
		in[i] = v
	}

	// Execute against the live inner instance; never deferred or simulated.
	return fn.Call(in), nil
}

// paramType resolves the declared type of parameter i, unrolling the
// variadic tail to its element type.
// Complexity: O(1).
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// argValue converts one loosely-typed argument into a reflect.Value of the
// wanted parameter type. Untyped nil maps to the zero value of nilable
// parameter types; assignable values pass through; convertible values are
// converted only between same-kind or numeric-to-numeric types (Go also
// permits int→string conversions, which would silently mangle arguments);
// everything else is a shape error.
// Complexity: O(1) per argument.
func argValue(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil for non-nilable %s", want)
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if v.Type().ConvertibleTo(want) && sameConversionClass(v.Type().Kind(), want.Kind()) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), want)
}

// sameConversionClass reports whether an implicit reflect conversion between
// the two kinds preserves the caller's intent: identical kinds (e.g. string
// to a named string type) or any pair of numeric kinds.
// Complexity: O(1).
func sameConversionClass(have, want reflect.Kind) bool {
	if have == want {
		return true
	}
	return numericKind(have) && numericKind(want)
}

// numericKind reports whether k is an integer, float, or complex kind.
// Complexity: O(1).
func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// splitTrailingError separates a trailing error return (if the method has
// one) from the remaining results. A nil trailing error yields err == nil;
// the error value itself is returned UNMODIFIED so it propagates to the
// caller exactly as the inner builder raised it.
//
// Only a result DECLARED as an error interface counts as the failure
// channel. A concrete type that happens to implement error (a status struct
// with a value-receiver Error method, say) is a result value: it passes
// through untouched, and probing it with IsNil would panic on non-nilable
// kinds anyway.
// Complexity: O(1).
func splitTrailingError(out []reflect.Value) ([]reflect.Value, error) {
	if len(out) == 0 {
		return out, nil
	}
	last := out[len(out)-1]
	if last.Kind() != reflect.Interface || !last.Type().Implements(errorType) {
		return out, nil
	}
	rest := out[:len(out)-1]
	if last.IsNil() {
		return rest, nil
	}

	return rest, last.Interface().(error)
}

// firstResult renders the leading result value as an interface, or nil when
// the method returned nothing beyond a possible trailing error.
// Complexity: O(1).
func firstResult(out []reflect.Value) any {
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}
