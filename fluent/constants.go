// Package fluent defines shared constants used by the wrapper, ensuring
// consistent defaults across construction, classification, and dispatch.
package fluent

//-----------------------------------------------------------------------------
// Naming-Convention Defaults
//   the default member classification is a prefix convention; callers may
//   replace it entirely via WithOncePredicate.
//-----------------------------------------------------------------------------

// DefaultFinalizeMethod is the finalize method name assumed by Wrap when no
// explicit name is supplied. The finalize method ends the chain and returns
// the inner builder's result value.
const DefaultFinalizeMethod = "Build"

// DefaultOncePrefix is the method-name prefix that marks a one-time method
// under the default convention ("WithTimeout", "WithName", ...).
const DefaultOncePrefix = "With"

// DefaultRepeatPrefix is the conventional prefix for repeatable methods
// ("AddHeader", "AddItem", ...). It exists for documentation and
// classification symmetry only: ANY method that is neither the finalize
// method nor matched by the one-time predicate is treated as repeatable,
// prefix or not.
const DefaultRepeatPrefix = "Add"

//-----------------------------------------------------------------------------
// Accessor Name Constants
//   used to prefix dispatch errors with the accessor for context.
//-----------------------------------------------------------------------------

const (
	// accessorCall is the canonical name of the Builder.Call accessor.
	accessorCall = "Call"
	// accessorGroup is the canonical name of the Builder.Group accessor.
	accessorGroup = "Group"
	// accessorValue is the canonical name of the Builder.Value accessor.
	accessorValue = "Value"
	// accessorFinalize is the canonical name of the Builder.Finalize accessor.
	accessorFinalize = "Finalize"
)
