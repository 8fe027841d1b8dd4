// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// api.go - thin public entry-points and the Builder chain view.
//
// Design contract (strict):
//   - One orchestrator: New(constructor, args, opts...). Constructs the inner
//     builder exactly once, resolves cfg, builds one dispatch table and one
//     empty Call-State, returns the first chain view.
//   - Every mutating call returns a NEW *Builder view; all views of one
//     lineage share the same inner instance and the same Call-State, so
//     call-discipline violations are visible globally across the chain.
//   - The inner builder is exclusively owned by the lineage: it is never
//     exposed, and its state is mutated only through dispatched calls.
//   - Safety: never panic at runtime; return sentinel errors from dispatch;
//     option constructors alone may panic on programmer error.
//
// AI-Hints (practical):
//   - Chain linearly: w, err = w.Call("WithName", "x"); reusing an older view
//     is allowed but shares Call-State, so replays still fail.
//   - Groups are reached via Group(name) and consumed by ONE GroupView.Call.
//   - Finalize() performs no Call-State check and may be reached on any view.

package fluent

import "fmt"

// Builder is one chain view over an inner builder instance and the shared
// Call-State of its lineage. The zero value is unusable; obtain views from
// New, Wrap, or WrapFinalize and from the return values of permitted calls.
type Builder struct {
	// table is the eager member classification, built once per lineage.
	table *dispatchTable
	// state is the shared consumed-identifier set of the lineage.
	state *callState
}

// New constructs the inner builder by invoking constructor with args exactly
// once, resolves the wrapper configuration from opts, and returns the first
// chain view bound to a fresh, empty Call-State.
//
// The constructor must be a func returning the inner builder value —
// typically a pointer to struct — optionally followed by a trailing error.
// A non-nil constructor error is returned unmodified. Shape violations
// (non-func, arity mismatch, nil result, missing finalize method) are
// reported with ErrBadConstructor.
//
// Rationale:
//   - Single public entry-point ensures consistent option resolution & error wrapping.
//   - Exactly one inner instance and one Call-State per lineage, by construction.
//
// Complexity:
//   - Resolving options: O(len(opts)) time, O(1) space.
//   - Table construction: one pass over the inner value's methods and fields.
//
// Errors:
//   - ErrBadConstructor for wrap-time shape violations; branch with errors.Is.
func New(constructor any, args []any, opts ...Option) (*Builder, error) {
	// Resolve deterministic wrapper configuration from functional options.
	cfg := newWrapConfig(opts...)

	// Instantiate exactly one inner builder instance.
	inner, err := construct(constructor, args)
	if err != nil {
		return nil, err
	}

	// Enumerate and classify the member set once for the whole lineage.
	table := newDispatchTable(inner, cfg)

	// The designated finalize method is part of the inner builder contract.
	if m, ok := table.members[cfg.finalize]; !ok || m.kind != KindFinalize {
		return nil, fmt.Errorf("New: no finalize method %q: %w", cfg.finalize, ErrBadConstructor)
	}

	// First view: empty Call-State, shared by every view derived from it.
	return &Builder{table: table, state: newCallState()}, nil
}

// Wrap builds a wrapped builder using the default finalize method name
// (DefaultFinalizeMethod). It merely closes over construction arguments and
// delegates to New.
// Complexity: that of New.
func Wrap(constructor any, args ...any) (*Builder, error) {
	return New(constructor, args)
}

// WrapFinalize builds a wrapped builder with an explicit finalize method
// name. It merely closes over construction arguments and delegates to New.
// Panics (via WithFinalizeMethod) on an empty name.
// Complexity: that of New.
func WrapFinalize(finalizeMethod string, constructor any, args ...any) (*Builder, error) {
	return New(constructor, args, WithFinalizeMethod(finalizeMethod))
}

// Call invokes the named chain method against the live inner instance and
// returns the next chain view.
//
// Dispatch:
//   - one-time method already consumed → ErrDuplicateMethodCall carrying the
//     method name, raised synchronously BEFORE the inner method runs.
//   - one-time method, first use → invoke, record the name, return new view.
//   - repeatable (or unclassified) method → invoke, Call-State untouched,
//     return new view.
//   - finalize / group / data member → ErrWrongMemberKind (use Finalize,
//     Group, or Value respectively).
//
// The inner method's own chain-return value is ignored; a trailing non-nil
// error propagates unmodified and does NOT consume the name.
//
// Complexity: O(1) lookup + O(len(args)) conversion + the inner method cost.
func (b *Builder) Call(name string, args ...any) (*Builder, error) {
	m, ok := b.table.members[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", accessorCall, memberErrorf(name, ErrUnknownMember))
	}

	switch m.kind {
	case KindOnce:
		// Discipline check first: fail before any inner side effect.
		if b.state.consumed(name) {
			return nil, memberErrorf(name, ErrDuplicateMethodCall)
		}
		if err := b.dispatch(name, m, args); err != nil {
			return nil, err
		}
		// Record only after a successful invocation (an inner failure must
		// not burn the single permitted use).
		b.state.consume(name)
		return b.next(), nil

	case KindRepeat:
		if err := b.dispatch(name, m, args); err != nil {
			return nil, err
		}
		return b.next(), nil

	default:
		return nil, fmt.Errorf("%s: %s is a %s member: %w",
			accessorCall, name, m.kind, ErrWrongMemberKind)
	}
}

// Group returns the transient proxy over the named group namespace.
// A consumed group fails with ErrDuplicateGroupUsage carrying the group
// name; a non-group member fails with ErrWrongMemberKind.
// Complexity: O(1).
func (b *Builder) Group(name string) (*GroupView, error) {
	m, ok := b.table.members[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", accessorGroup, memberErrorf(name, ErrUnknownMember))
	}
	if m.kind != KindGroup {
		return nil, fmt.Errorf("%s: %s is a %s member: %w",
			accessorGroup, name, m.kind, ErrWrongMemberKind)
	}
	if b.state.consumed(name) {
		return nil, memberErrorf(name, ErrDuplicateGroupUsage)
	}

	// Transient proxy: one successful call through it consumes the group.
	return &GroupView{name: name, methods: m.group, origin: b}, nil
}

// Value returns the named plain data field of the inner builder unmodified.
// No interception, no Call-State involvement.
// Complexity: O(1).
func (b *Builder) Value(name string) (any, error) {
	m, ok := b.table.members[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", accessorValue, memberErrorf(name, ErrUnknownMember))
	}
	if m.kind != KindData {
		return nil, fmt.Errorf("%s: %s is a %s member: %w",
			accessorValue, name, m.kind, ErrWrongMemberKind)
	}

	return m.value.Interface(), nil
}

// Finalize invokes the designated finalize method with zero arguments and
// returns its result as-is (first result value; a trailing error return is
// split off and passed through unchanged).
//
// Finalize never reads or mutates Call-State: it reflects whatever sequence
// of prior calls occurred, and re-finalization is not rejected by the
// wrapper (explicit scope boundary, not a guarantee).
//
// Complexity: O(1) + the inner finalize cost.
func (b *Builder) Finalize() (any, error) {
	name := b.table.finalize
	m, ok := b.table.members[name]
	if !ok || m.kind != KindFinalize {
		// Unreachable after New's wrap-time validation; kept as a guard.
		return nil, fmt.Errorf("%s: %w", accessorFinalize, memberErrorf(name, ErrUnknownMember))
	}

	out, err := callMember(name, m.invoke, nil)
	if err != nil {
		return nil, err
	}
	rest, err := splitTrailingError(out)
	if err != nil {
		return nil, err
	}

	return firstResult(rest), nil
}

// dispatch runs one classified chain method against the live inner instance,
// discarding its chain-return value and propagating a trailing error
// unmodified.
func (b *Builder) dispatch(name string, m member, args []any) error {
	out, err := callMember(name, m.invoke, args)
	if err != nil {
		return err
	}
	_, err = splitTrailingError(out)

	return err
}

// next derives the successor chain view: a NEW Builder bound to the same
// dispatch table and the same (possibly just-mutated) Call-State.
func (b *Builder) next() *Builder {
	return &Builder{table: b.table, state: b.state}
}
