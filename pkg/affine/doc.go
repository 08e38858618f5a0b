// Package affine adapts 4×4 transformation matrices to the xform chain
// machinery.
//
// It provides the matrix operand ([Matrix], [Algebra]), lazily recomputed
// primitive transformations ([Translate], [Rotate], [Scale]), fixed matrices
// ([NewFixed]), and the [Device] boundary through which composed matrices
// leave the library.
//
// Matrices follow the row-vector convention, so in a chain built as
//
//	s := affine.NewStack()
//	s.Push("world", affine.NewTranslate(0, 0, 10))
//	s.Push("model", affine.NewRotate(affine.AxisZ, math.Pi/2))
//
// the composed operand is model·world: points are rotated first and then
// translated, which is how a scene graph nests local frames in parents.
package affine
