// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// options.go — functional options for the fluent package.
//
// Contract (strict):
//   • Options are functional (type Option func(*wrapConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (per lvlath 99-rules). Dispatch itself MUST NOT panic.
//   • No hidden globals; everything flows through wrapConfig.
//
// AI-Hints:
//   • WrapFinalize(name, ctor, args...) is shorthand for
//     New(ctor, args, WithFinalizeMethod(name)).
//   • Prefer WithOncePrefix for a simple alternate convention; reach for
//     WithOncePredicate only when a prefix cannot express the rule.

package fluent

// Option customizes wrapper behavior by mutating a wrapConfig instance
// before the dispatch table is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*wrapConfig)

// WithFinalizeMethod sets the finalize method name the wrapper designates as
// the chain terminator. Panics on the empty string to surface programmer
// error early and keep invariants tight.
// Complexity: O(1) time, O(1) space.
func WithFinalizeMethod(name string) Option {
	if name == "" {
		// Fail fast: option constructors validate and panic (99-rules).
		panic("fluent: WithFinalizeMethod(\"\")")
	}
	return func(c *wrapConfig) {
		// Assign the designated terminator; excluded from classification.
		c.finalize = name
	}
}

// WithOncePredicate replaces the one-time classifier entirely.
// The predicate receives bare method names and MUST be pure. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithOncePredicate(fn Predicate) Option {
	if fn == nil {
		// Fail fast to avoid silent always-repeatable classification later.
		panic("fluent: WithOncePredicate(nil)")
	}
	return func(c *wrapConfig) {
		// Store the classifier; consulted once per method at wrap time.
		c.once = fn
	}
}

// WithOncePrefix sets the one-time classification to a prefix match,
// replacing DefaultOncePrefix. Panics on the empty string (an empty prefix
// would classify every method as one-time, which is never the intent).
// Complexity: O(1) time, O(1) space.
func WithOncePrefix(prefix string) Option {
	if prefix == "" {
		panic("fluent: WithOncePrefix(\"\")")
	}
	return func(c *wrapConfig) {
		// Convenience wrapper over prefixPredicate.
		c.once = prefixPredicate(prefix)
	}
}
