// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • wrapConfig is the single source of truth for all wrapper knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newWrapConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • finalize = DefaultFinalizeMethod ("Build")
//   • once     = prefixPredicate(DefaultOncePrefix) ("With*")
//
// AI-Hints:
//   • Override the finalize name via WithFinalizeMethod for inner builders
//     that end their chain with Run/Execute/Done.
//   • Override classification via WithOncePredicate when the inner builder
//     cannot follow the prefix convention.

package fluent

// wrapConfig aggregates all knobs used by wrap-time table construction.
// It is passed by VALUE after resolution (immutable to dispatch).
type wrapConfig struct {
	// Finalize method name; dispatch excludes it from classification.
	finalize string
	// One-time classifier: method name -> must-only-be-called-once.
	once Predicate
}

// newWrapConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newWrapConfig(opts ...Option) wrapConfig {
	// Start with strict, deterministic defaults.
	cfg := wrapConfig{
		finalize: DefaultFinalizeMethod,              // "Build"
		once:     prefixPredicate(DefaultOncePrefix), // "With*"
	}

	// Apply options in the given order; later options override earlier ones.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
