// Package ftl_adapter translates the FTL syntax tree produced by the syntax
// package into the canonical model defined in the model package.
//
// The translation is a pure structural transform. It consumes the tree and
// builds a freshly allocated model; nothing in the result points back into the
// syntax tree. Traits are not projected yet, so every translated message has
// nil Traits.
package ftl_adapter
