// Package tupl provides statically typed tuples: generic struct types
// T0 through T50 that hold a specific number of values, together with
// the operations that make sense at each arity.
//
// Every tuple has Len, Slice and String. Tuples with at least one
// element also have Head, Tail, HeadPtr, TailPtr, TruncateHead and
// TruncateTail, and satisfy the NonEmpty interface. Tuples below the
// MaxArity ceiling can grow through the AppendN and PrependN
// functions. A capability that does not apply to an arity simply does
// not exist for it, so misuse fails to compile: T0 has no Head, and
// there is no Append50.
//
// See the tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tupl

//go:generate go run github.com/Dragoteryx/tupl/cmd/tuplegen
