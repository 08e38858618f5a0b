// Package io reads and writes scene documents: named chains of matrix
// transforms stored as TOML or JSON.
//
// # Format
//
// A document is a group or a stack. Its transforms are listed in chain
// order, so for a stack the first transform is the bottom (outermost frame)
// and the last is the top:
//
//	kind = "stack"
//	label = "arm"
//
//	[[transform]]
//	name = "shoulder"
//	type = "translate"
//	y = 2.0
//
//	[[transform]]
//	name = "elbow"
//	type = "rotate"
//	axis = "z"
//	degrees = 45.0
//
// The JSON form uses the same field names with "transforms" for the list.
//
// # Transform Types
//
//   - translate: x, y, z offsets (default 0)
//   - rotate: axis ("x", "y" or "z") and degrees
//   - scale: x, y, z factors (default 1)
//   - matrix: 4 rows of 4 values, row-vector convention
//   - group, stack: a nested chain with its own transform list
//
// # Building
//
// [Build] turns a validated [Document] into a [Scene] of live
// transformations from the affine package. [FromChain] goes the other way,
// capturing a chain's current local matrices so the composed result can be
// exported and re-imported.
package io
