// SPDX-License-Identifier: MIT
// Package: lvlwrap/fluent
//
// table.go — the eager dispatch table built once per inner builder instance.
//
// Design:
//   • Go has no lazy member-access trap, so the table enumerates the inner
//     value's exported methods and fields ONCE at wrap time and classifies
//     each member eagerly. Dispatch semantics (Call-State checks, chain-view
//     creation) are unaffected by the eager mechanism.
//   • Methods are bound to the live inner instance at enumeration time, so
//     every permitted call executes immediately against that instance.
//   • Classification by shape: methods → finalize/once/repeat (by name,
//     via wrapConfig); exported fields with ≥1 exported method → group;
//     remaining exported fields → data.
//
// AI-Hints:
//   • A group field that is a nil pointer or nil interface at wrap time is
//     classified as data ("non-null structured value" requirement).
//   • Field/method name collisions cannot occur on well-formed Go structs;
//     the table registers methods first and skips shadowed field names.

package fluent

import "reflect"

// member is one classified entry of the dispatch table.
type member struct {
	// kind selects which of the fields below is meaningful.
	kind Kind
	// invoke is the bound method value (KindOnce / KindRepeat / KindFinalize).
	invoke reflect.Value
	// value is the raw field value (KindData).
	value reflect.Value
	// group maps group-method names to bound method values (KindGroup).
	group map[string]reflect.Value
}

// dispatchTable maps member names of one inner builder instance to their
// classified dispatch entries. Built once at wrap time, read-only afterwards,
// and shared by every chain view of the lineage.
type dispatchTable struct {
	members map[string]member
	// finalize is the designated finalize method name of this lineage.
	finalize string
}

// newDispatchTable enumerates and classifies every exported member of inner.
//
// Parameters:
//   - inner: the constructed inner builder, normalized to a pointer where
//     possible so pointer-receiver methods participate.
//   - cfg:   resolved configuration (finalize name, one-time predicate).
//
// Complexity: O(M + F·G) time where M = methods, F = fields, G = group
// methods per field; O(M + F + ΣG) space. Runs once per lineage.
func newDispatchTable(inner reflect.Value, cfg wrapConfig) *dispatchTable {
	table := &dispatchTable{members: make(map[string]member), finalize: cfg.finalize}

	// 1) Methods of the (pointer) type: finalize / once / repeat by name.
	t := inner.Type()
	var i int
	for i = 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		// Bind to the live instance so dispatch is a direct call later.
		bound := inner.Method(i)
		switch {
		case name == cfg.finalize:
			table.members[name] = member{kind: KindFinalize, invoke: bound}
		case cfg.once(name):
			table.members[name] = member{kind: KindOnce, invoke: bound}
		default:
			// Permissive fallback: unclassified callables are repeatable.
			table.members[name] = member{kind: KindRepeat, invoke: bound}
		}
	}

	// 2) Exported struct fields: group namespaces and plain data.
	elem := inner
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		// Non-struct inner builders expose methods only; nothing to add.
		return table
	}
	et := elem.Type()
	for i = 0; i < et.NumField(); i++ {
		sf := et.Field(i)
		if !sf.IsExported() {
			continue
		}
		if _, taken := table.members[sf.Name]; taken {
			// Shadowed by a method of the same promoted name; methods win.
			continue
		}
		fv := elem.Field(i)
		if methods := groupMethods(fv); methods != nil {
			table.members[sf.Name] = member{kind: KindGroup, group: methods}
			continue
		}
		table.members[sf.Name] = member{kind: KindData, value: fv}
	}

	return table
}

// groupMethods returns the bound exported methods of a field value, or nil
// when the field is not a group namespace (no exported methods, or a nil
// pointer/interface value).
//
// The receiver used for method lookup is the addressable field where
// possible, so pointer-receiver group methods participate.
//
// Complexity: O(G) time and space for G exported methods.
func groupMethods(fv reflect.Value) map[string]reflect.Value {
	recv := fv
	switch fv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if fv.IsNil() {
			// A nil namespace is plain data, not a consumable group.
			return nil
		}
	default:
		if fv.CanAddr() {
			// Prefer the address so pointer-receiver methods are visible.
			recv = fv.Addr()
		}
	}

	n := recv.NumMethod()
	if n == 0 {
		return nil
	}
	methods := make(map[string]reflect.Value, n)
	rt := recv.Type()
	var i int
	for i = 0; i < n; i++ {
		methods[rt.Method(i).Name] = recv.Method(i)
	}

	return methods
}
