// Package fluent wraps an arbitrary "plain" builder value with a runtime
// enforcement layer that imposes call-discipline rules the inner builder
// never has to implement itself: one-time methods, repeatable methods,
// group namespaces consumed as a single unit, and a designated finalize
// method that ends the chain.
//
// The package offers the following key components:
//
//   - Entry points:
//     – New:           single orchestrator (constructor + args + options).
//     – Wrap:          convenience factory with the default finalize name.
//     – WrapFinalize:  convenience factory with an explicit finalize name.
//   - Chain views:
//     – Builder:       a view over one inner instance + one Call-State;
//     every mutating call returns a NEW view sharing both.
//     – GroupView:     transient proxy over one group namespace; calling
//     any one of its methods consumes the whole group.
//   - Classification:
//     – Kind:          Data / Once / Repeat / Group / Finalize.
//     – Predicate:     name classifier; default is a With*-prefix match,
//     overridable via WithOncePredicate / WithOncePrefix.
//   - Configuration primitives:
//     – Option:        a function that mutates wrapConfig before use.
//     – wrapConfig:    holds finalize name and the one-time predicate.
//
// Guarantees:
//
//   - Interception is eager: the dispatch table is built exactly once per
//     inner builder instance; dispatch itself is a map lookup.
//   - Side effects are live: every permitted call executes immediately
//     against the one inner instance — nothing is deferred or simulated.
//   - Violations surface synchronously as sentinel errors
//     (ErrDuplicateMethodCall, ErrDuplicateGroupUsage) wrapped with the
//     offending member name; branch with errors.Is, never string-match.
//   - The inner builder's own chain-return values are ignored (the wrapper
//     substitutes its own view); a trailing non-nil error return propagates
//     to the caller unchanged and does not consume the member name.
//   - Unclassified methods fall back to repeatable-without-tracking: any
//     callable that is neither the finalize method nor matched by the
//     one-time predicate is always permitted.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; dispatch never panics at runtime.
//
// Concurrency: not supported. All views of one lineage share one unlocked
// Call-State; the intended use is a strictly sequential fluent chain inside
// one logical flow. Invoking views of the same lineage from multiple
// goroutines is a race on Call-State membership with no ordering guarantee.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   - Keep chaining linear: w, err = w.Call(...); the old view stays valid
//     but shares the same Call-State, so replays fail globally.
//   - Use WithOncePredicate to replace the naming convention entirely when
//     the inner builder cannot follow With*/Add* prefixes.
//   - Finalize performs no Call-State check and may be invoked on any view;
//     it always reflects whatever sequence of prior calls occurred.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package fluent
