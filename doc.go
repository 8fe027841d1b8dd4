// Package lvlwrap is your in-process enforcement layer for fluent builders —
// wrap any plain chainable object and get call-discipline for free.
//
// 🚀 What is lvlwrap?
//
//	A small, zero-runtime-dependency library that brings together:
//		• One-time methods: configure a value at most once per chain
//		• Repeatable methods: append as many times as you like
//		• Group namespaces: a nested method set consumed as a single unit
//		• A configurable finalize method that ends the chain and yields the result
//
// ✨ Why choose lvlwrap?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, errors.Is everywhere, no panics at runtime
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – supply your own classification predicate instead of the
//     default With*/Add* naming convention
//
// Under the hood, everything is organized under one subpackage:
//
//	fluent/ — the Builder Wrapper: dispatch table, Call-State, chain views
//
// Quick example:
//
//	w, _ := fluent.Wrap(NewGreeter)
//	w, _ = w.Call("WithName", "World")
//	out, _ := w.Finalize() // "Hello, World!"
//
// Calling WithName a second time anywhere on the same chain fails with
// fluent.ErrDuplicateMethodCall.
//
// Dive into the per-package doc.go files for full contracts, and the
// examples/ directory for runnable programs.
//
//	go get github.com/katalvlaran/lvlwrap/fluent
package lvlwrap
