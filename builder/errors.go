// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch on semantics with errors.Is(err, ErrX).
//   - Constructors attach context via %w wrapping; sentinels themselves
//     never embed parameter values.
//   - Builders do not panic at runtime; validation panics are confined
//     to option constructors (WithX...).
package builder

import "errors"

// ErrBadArity indicates a branching factor below 1 passed to Complete.
// Usage: if errors.Is(err, ErrBadArity) { /* fix arity */ }.
var ErrBadArity = errors.New("builder: arity must be >= 1")

// ErrBadDepth indicates a negative depth passed to Complete.
// Usage: if errors.Is(err, ErrBadDepth) { /* fix depth */ }.
var ErrBadDepth = errors.New("builder: depth must be >= 0")

// ErrBadSize indicates an invalid node or label count: Path with no
// labels, or Random with n < 1.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic builder (Random) was
// invoked without an RNG; set one with WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
