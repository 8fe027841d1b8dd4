// Package fluent contains unit tests for the invocation helpers: argument
// shaping, variadic handling, and trailing-error extraction.
package fluent

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestCallMemberArity verifies arity validation for fixed and variadic funcs.
func TestCallMemberArity(t *testing.T) {
	t.Parallel()

	fixed := reflect.ValueOf(func(a, b int) int { return a + b })
	variadic := reflect.ValueOf(func(parts ...string) string { return strings.Join(parts, ",") })

	// 1. Correct fixed arity succeeds
	out, err := callMember("sum", fixed, []any{2, 3})
	if err != nil {
		t.Fatalf("sum(2,3): unexpected error %v", err)
	}
	if got := out[0].Interface().(int); got != 5 {
		t.Errorf("sum(2,3): expected 5, got %d", got)
	}

	// 2. Wrong fixed arity is a shape error naming the member
	if _, err = callMember("sum", fixed, []any{2}); err == nil || !strings.Contains(err.Error(), "sum") {
		t.Errorf("sum(2): expected arity error naming the member, got %v", err)
	}

	// 3. Variadic accepts zero and many tail arguments
	if _, err = callMember("join", variadic, nil); err != nil {
		t.Errorf("join(): unexpected error %v", err)
	}
	out, err = callMember("join", variadic, []any{"a", "b", "c"})
	if err != nil {
		t.Fatalf("join(a,b,c): unexpected error %v", err)
	}
	if got := out[0].Interface().(string); got != "a,b,c" {
		t.Errorf("join(a,b,c): expected \"a,b,c\", got %q", got)
	}
}

// TestCallMemberConversion verifies the loose argument typing rules:
// assignable passes, convertible converts, nil fills nilable params,
// everything else is a shape error.
func TestCallMemberConversion(t *testing.T) {
	t.Parallel()

	takesInt64 := reflect.ValueOf(func(v int64) int64 { return v })
	takesSlice := reflect.ValueOf(func(v []string) int { return len(v) })

	// 1. Convertible: untyped int literal arrives as int, converts to int64
	out, err := callMember("toInt64", takesInt64, []any{7})
	if err != nil {
		t.Fatalf("toInt64(7): unexpected error %v", err)
	}
	if got := out[0].Interface().(int64); got != 7 {
		t.Errorf("toInt64(7): expected 7, got %d", got)
	}

	// 2. Untyped nil fills a nilable parameter with its zero value
	out, err = callMember("lenOf", takesSlice, []any{nil})
	if err != nil {
		t.Fatalf("lenOf(nil): unexpected error %v", err)
	}
	if got := out[0].Interface().(int); got != 0 {
		t.Errorf("lenOf(nil): expected 0, got %d", got)
	}

	// 3. Untyped nil for a non-nilable parameter is a shape error
	if _, err = callMember("toInt64", takesInt64, []any{nil}); err == nil {
		t.Errorf("toInt64(nil): expected shape error, got nil")
	}

	// 4. Incompatible argument type is a shape error
	if _, err = callMember("toInt64", takesInt64, []any{"seven"}); err == nil {
		t.Errorf("toInt64(\"seven\"): expected shape error, got nil")
	}
}

// stampErr is a concrete struct that implements error via a value receiver;
// used to verify that only interface-declared results count as the failure
// channel.
type stampErr struct{ code int }

func (s stampErr) Error() string { return "stamp" }

// TestSplitTrailingError verifies trailing-error extraction semantics.
func TestSplitTrailingError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	// 1. No results: nothing to split
	if rest, err := splitTrailingError(nil); err != nil || len(rest) != 0 {
		t.Errorf("empty: expected (0, nil), got (%d, %v)", len(rest), err)
	}

	// 2. Trailing nil error is stripped silently
	fn := reflect.ValueOf(func() (string, error) { return "ok", nil })
	rest, err := splitTrailingError(fn.Call(nil))
	if err != nil || len(rest) != 1 || rest[0].Interface().(string) != "ok" {
		t.Errorf("nil error: expected (\"ok\", nil), got (%v, %v)", rest, err)
	}

	// 3. Trailing non-nil error is returned UNMODIFIED
	fn = reflect.ValueOf(func() (string, error) { return "", boom })
	_, err = splitTrailingError(fn.Call(nil))
	if !errors.Is(err, boom) {
		t.Errorf("non-nil error: expected boom unmodified, got %v", err)
	}

	// 4. Non-error last result passes through untouched
	fn = reflect.ValueOf(func() (int, int) { return 1, 2 })
	rest, err = splitTrailingError(fn.Call(nil))
	if err != nil || len(rest) != 2 {
		t.Errorf("non-error tail: expected 2 results, got (%d, %v)", len(rest), err)
	}

	// 5. A concrete struct result that merely implements error is a RESULT,
	//    not a failure: it must pass through (and must not panic on IsNil)
	fn = reflect.ValueOf(func() stampErr { return stampErr{code: 7} })
	rest, err = splitTrailingError(fn.Call(nil))
	if err != nil || len(rest) != 1 {
		t.Fatalf("concrete error type: expected (1 result, nil), got (%d, %v)", len(rest), err)
	}
	if got := rest[0].Interface().(stampErr); got.code != 7 {
		t.Errorf("concrete error type: expected code 7, got %d", got.code)
	}

	// 6. Same for a declared interface holding a concrete struct error:
	//    the INTERFACE declaration is what selects the failure channel
	fn = reflect.ValueOf(func() error { return stampErr{code: 9} })
	_, err = splitTrailingError(fn.Call(nil))
	if err == nil || err.Error() != "stamp" {
		t.Errorf("interface-declared error: expected stamp failure, got %v", err)
	}
}
