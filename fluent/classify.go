// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// classify.go — member classification primitives.
//
// Design:
//   • Kind is the complete member taxonomy: Data / Once / Repeat / Group / Finalize.
//   • Classification by name is a Predicate, not hard-wired naming magic;
//     the default predicate is a DefaultOncePrefix match.
//   • Group vs. data is decided by shape, not by name: an exported struct
//     field whose (non-nil) value exposes at least one exported method is a
//     group namespace; every other exported field is plain data.
//
// AI-Hints:
//   • The permissive fallback is deliberate: a method that is neither the
//     finalize method nor matched by the one-time predicate classifies as
//     KindRepeat and is never tracked.
//   • Predicates see the bare method name ("WithValue"), never the receiver.

package fluent

import "strings"

// Predicate reports whether a method name belongs to a classification class.
// Implementations MUST be pure and deterministic for a given name.
// Complexity: expected O(len(name)).
type Predicate func(name string) bool

// Kind identifies how a member of the inner builder participates in
// call-discipline dispatch.
type Kind uint8

const (
	// KindData is a plain data field: returned unmodified, never intercepted.
	KindData Kind = iota
	// KindOnce is a one-time method: invocable at most once per lineage.
	KindOnce
	// KindRepeat is a repeatable (or unclassified) method: always permitted,
	// never tracked in Call-State.
	KindRepeat
	// KindGroup is a group namespace: consumed as a whole by any single call.
	KindGroup
	// KindFinalize is the designated finalize method: ends the chain and
	// yields the result; excluded from once/repeat/group classification.
	KindFinalize
)

// kindNames maps Kind values to stable human-readable tokens for error
// context and debugging. Index order MUST match the const block above.
var kindNames = [...]string{"data", "once", "repeat", "group", "finalize"}

// String renders the Kind as its stable token ("once", "group", ...).
// Complexity: O(1).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// prefixPredicate builds the default name classifier: true when name starts
// with the given prefix. Used for the one-time convention (DefaultOncePrefix).
// Complexity: O(len(prefix)) per call.
func prefixPredicate(prefix string) Predicate {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}
}
