// Package pkg holds the xformstack libraries.
//
//   - [xform] is the generic core: transformations, lazily recomputed chains,
//     groups, stacks, bookmarks and change notification.
//   - [affine] instantiates the core for 4×4 matrices.
//   - [io] reads and writes scene documents (TOML, JSON) and builds chains.
//   - [pipeline] orchestrates load → evaluate → render with caching.
//   - [render/nodelink] draws chains as Graphviz diagrams.
//   - [cache] stores rendered artifacts (file, Redis, null).
//   - [observability] exposes hooks for chain, pipeline and cache events.
//   - [errors] defines coded errors shared by every package.
//
// The typical flow:
//
//	scene.toml → io.Import → io.Build → Stack/Group → Operand → nodelink.ToDOT
package pkg
