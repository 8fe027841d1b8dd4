// Package fluent contains unit tests for the configuration primitives
// (wrapConfig and Option) to ensure correct application and override behavior.
package fluent

import "testing"

// TestConfigDefaults verifies the deterministic defaults of newWrapConfig.
func TestConfigDefaults(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	cfg := newWrapConfig()

	// 1. Finalize name defaults to DefaultFinalizeMethod
	if cfg.finalize != DefaultFinalizeMethod {
		t.Errorf("default finalize: expected %q, got %q", DefaultFinalizeMethod, cfg.finalize)
	}

	// 2. Default once predicate matches the With* prefix
	if !cfg.once("WithValue") {
		t.Errorf("default once: expected WithValue to classify as one-time")
	}
	if cfg.once("AddItem") {
		t.Errorf("default once: expected AddItem to classify as repeatable")
	}
	if cfg.once("Tune") {
		t.Errorf("default once: expected unclassified Tune to be repeatable")
	}
}

// TestConfigOverrides verifies option application order (last wins) and each
// option's effect on the resolved configuration.
func TestConfigOverrides(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. WithFinalizeMethod overrides the finalize name
	cfgRun := newWrapConfig(WithFinalizeMethod("Run"))
	if cfgRun.finalize != "Run" {
		t.Errorf("WithFinalizeMethod: expected \"Run\", got %q", cfgRun.finalize)
	}

	// 2. WithOncePrefix swaps the prefix convention
	cfgSet := newWrapConfig(WithOncePrefix("Set"))
	if !cfgSet.once("SetName") || cfgSet.once("WithName") {
		t.Errorf("WithOncePrefix: expected Set* one-time and With* repeatable")
	}

	// 3. WithOncePredicate replaces the classifier entirely
	cfgExact := newWrapConfig(WithOncePredicate(func(name string) bool { return name == "Seal" }))
	if !cfgExact.once("Seal") || cfgExact.once("WithSeal") {
		t.Errorf("WithOncePredicate: expected exact-match classifier to apply")
	}

	// 4. Later options override earlier ones (last wins)
	cfgLast := newWrapConfig(WithOncePrefix("Set"), WithOncePrefix("Use"))
	if !cfgLast.once("UseCache") || cfgLast.once("SetName") {
		t.Errorf("override order: expected the last WithOncePrefix to win")
	}
}

// TestOptionConstructorPanics verifies that option constructors fail fast on
// meaningless inputs (panics are confined to option constructors).
func TestOptionConstructorPanics(t *testing.T) {
	t.Parallel()

	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic on invalid input", name)
			}
		}()
		fn()
	}

	mustPanic("WithFinalizeMethod(\"\")", func() { WithFinalizeMethod("") })
	mustPanic("WithOncePredicate(nil)", func() { WithOncePredicate(nil) })
	mustPanic("WithOncePrefix(\"\")", func() { WithOncePrefix("") })
}
