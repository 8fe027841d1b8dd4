// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// group.go — the transient proxy over one group namespace.
//
// Design:
//   - A GroupView exists between Builder.Group(name) and exactly one
//     successful GroupView.Call. That call marks the GROUP name (never the
//     individual method name) as consumed and hands back a fresh *Builder,
//     so the proxy naturally falls out of the chain.
//   - Consumption is enforced twice: structurally (the continuation is a
//     Builder, not the proxy) and by the Call-State check, which also covers
//     a caller that retained a stale proxy.

package fluent

import (
	"fmt"
	"reflect"
	"sort"
)

// GroupView is the transient proxy over one group namespace of the inner
// builder. Obtain it from Builder.Group; one successful Call consumes the
// whole group for the remainder of the lineage.
type GroupView struct {
	// name is the group (field) name recorded in Call-State on consumption.
	name string
	// methods maps group-method names to bound method values.
	methods map[string]reflect.Value
	// origin is the view that produced this proxy; source of table and state.
	origin *Builder
}

// Methods lists the group's method names in sorted order. This exposes the
// namespace SHAPE only, never Call-State.
// Complexity: O(G log G) for G methods.
func (gv *GroupView) Methods() []string {
	names := make([]string, 0, len(gv.methods))
	for name := range gv.methods {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Call invokes one method of the group against the live inner builder,
// marks the group name as consumed, and returns the next chain view.
//
// Dispatch:
//   - group already consumed (stale proxy replay) → ErrDuplicateGroupUsage
//     carrying the GROUP name, before any inner side effect.
//   - unknown method → ErrUnknownMember carrying "group.method".
//   - inner method trailing error → propagated unmodified, group NOT consumed.
//
// Complexity: O(1) lookup + O(len(args)) conversion + the inner method cost.
func (gv *GroupView) Call(method string, args ...any) (*Builder, error) {
	// Discipline check first: covers proxies retained past consumption.
	if gv.origin.state.consumed(gv.name) {
		return nil, memberErrorf(gv.name, ErrDuplicateGroupUsage)
	}

	fn, ok := gv.methods[method]
	if !ok {
		return nil, fmt.Errorf("%s: %w", accessorGroup,
			memberErrorf(gv.name+"."+method, ErrUnknownMember))
	}

	out, err := callMember(gv.name+"."+method, fn, args)
	if err != nil {
		return nil, err
	}
	if _, err = splitTrailingError(out); err != nil {
		// An inner failure must not burn the group's single permitted use.
		return nil, err
	}

	// One call through the proxy consumes the whole namespace.
	gv.origin.state.consume(gv.name)

	return gv.origin.next(), nil
}
