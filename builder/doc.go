// Package builder provides reusable "functional-options"-style tree
// constructors. It lives alongside the tree, walk, and mutate packages
// to centralize fixture generation for tests, benchmarks, and demos,
// keeping deterministic shape and label policies in one place.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:        a function that mutates config before use.
//     – config:        holds RNG and the label generator.
//   - Label policies:
//     – default:       node index as the label ("0","1",… as int64).
//     – WithLabelFunc: any deterministic index → label mapping.
//   - Tree constructors:
//     – Path:          degenerate chain from an explicit label list.
//     – Complete:      complete k-ary tree of a given arity and depth.
//     – Random:        recursive random tree (uniform parent choice).
//   - Determinism controls:
//     – WithSeed:      fresh seeded RNG, reproducible shapes.
//     – WithRand:      caller-owned RNG, shared across builders.
//
// Every builder validates its parameters and returns a sentinel error
// (ErrBadArity, ErrBadDepth, ErrBadSize, ErrNeedRandSource) instead of
// panicking; option constructors panic on meaningless inputs (nil RNG,
// nil label function) to surface programmer error early.
//
// Complexity: each builder is linear in the number of nodes it creates;
// Complete creates (arity^(depth+1) - 1)/(arity - 1) nodes for arity > 1.
package builder
