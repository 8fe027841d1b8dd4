// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// state.go — Call-State: the consumed-identifier set of one wrapper lineage.
//
// Design:
//   • One callState per lineage, created empty at wrap time, shared by
//     reference with every chain view produced, never duplicated or reset.
//   • Membership covers one-time method names and group names; repeatable
//     methods and the finalize method never touch it.
//   • Deliberately unlocked: the supported use case is a strictly sequential
//     fluent chain; concurrent mutation is documented as unsupported rather
//     than papered over with locking.

package fluent

// callState records the consumed identifiers of one wrapper lineage.
type callState struct {
	// used holds one entry per consumed one-time method name or group name.
	used map[string]struct{}
}

// newCallState allocates an empty Call-State.
// Complexity: O(1).
func newCallState() *callState {
	return &callState{used: make(map[string]struct{})}
}

// consumed reports whether name was already recorded in this lineage.
// Complexity: O(1) expected.
func (s *callState) consumed(name string) bool {
	_, ok := s.used[name]
	return ok
}

// consume records name as used for the remainder of the lineage.
// Recording is idempotent; dispatch checks consumed() first anyway.
// Complexity: O(1) expected.
func (s *callState) consume(name string) {
	s.used[name] = struct{}{}
}
