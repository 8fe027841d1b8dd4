// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// errors.go — sentinel errors for the fluent package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Dispatch attaches the offending member name using `%w` context.
//   • Dispatch MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...), per lvlath 99-rules.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • The call-discipline contract consists of EXACTLY two sentinels:
//     ErrDuplicateMethodCall and ErrDuplicateGroupUsage. The remaining
//     sentinels are mechanical surface of the eager-table rendition
//     (unknown names, kind mismatches, wrap-time constructor misuse).
//   • Wrap lower-level context with the member name: memberErrorf(name, ErrX).
//   • Check with errors.Is in tests and production code; avoid string
//     comparisons.

package fluent

import (
	"errors"
	"fmt"
)

// ErrDuplicateMethodCall indicates that a one-time method was invoked a
// second time within the same wrapper lineage. The wrapped error context
// carries the offending method name.
// Classification: call-discipline violation (contract error).
// Usage: if errors.Is(err, ErrDuplicateMethodCall) { /* fix chain order */ }.
var ErrDuplicateMethodCall = errors.New("fluent: method already called")

// ErrDuplicateGroupUsage indicates that a group namespace was accessed after
// one of its methods had already consumed the group. The wrapped error
// context carries the GROUP name, not the individual method name.
// Classification: call-discipline violation (contract error).
// Usage: if errors.Is(err, ErrDuplicateGroupUsage) { /* pick one group call */ }.
var ErrDuplicateGroupUsage = errors.New("fluent: group already used")

// ErrUnknownMember indicates that the requested name matches no method,
// group, or data field of the inner builder. The eager table reports an
// absent member as an error rather than deferring to a nil dereference.
// Usage: if errors.Is(err, ErrUnknownMember) { /* check spelling/export */ }.
var ErrUnknownMember = errors.New("fluent: unknown member")

// ErrWrongMemberKind indicates the accessor does not match the member's
// classification: Call on a group or data field, Group on a method, Value on
// a callable, or Call on the finalize name (use Finalize).
// Usage: if errors.Is(err, ErrWrongMemberKind) { /* use the right accessor */ }.
var ErrWrongMemberKind = errors.New("fluent: member kind mismatch")

// ErrBadConstructor indicates that the value passed to New/Wrap/WrapFinalize
// is not a usable inner-builder constructor: not a func, wrong arity for the
// supplied arguments, no builder return value, or a nil builder result.
// Raised at wrap time only; dispatch never returns it.
// Usage: if errors.Is(err, ErrBadConstructor) { /* fix the factory shape */ }.
var ErrBadConstructor = errors.New("fluent: invalid constructor")

// memberErrorf wraps a sentinel with the offending member name.
// It returns an error of the form "<name>: <sentinel text>" and preserves
// the sentinel for errors.Is.
//
// Parameters:
//   - name: the member (method or group) name being reported.
//   - err:  the sentinel to preserve via %w.
//
// Complexity: O(len(name)), negligible.
func memberErrorf(name string, err error) error {
	// Keep the sentinel chained so callers can branch with errors.Is.
	return fmt.Errorf("%s: %w", name, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return memberErrorf("WithTimeout", ErrDuplicateMethodCall)
//    This yields "WithTimeout: fluent: method already called" while keeping
//    ErrDuplicateMethodCall reachable through errors.Is.
//
// 2) Propagation (required):
//    Errors returned by the inner builder's own method bodies pass through
//    the wrapper UNMODIFIED — no wrapping, no logging, no retry. The two
//    discipline sentinels likewise propagate unchanged to the caller.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX) and, where the contract
//    requires it, strings.Contains(err.Error(), name) for the offending
//    member name. Avoid full error-string equality.
