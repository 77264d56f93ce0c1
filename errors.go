package motion

import "errors"

// Common errors returned by springs and splines.
var (
	// ErrInvalidConfig indicates invalid construction or option parameters.
	ErrInvalidConfig = errors.New("invalid motion configuration")

	// ErrKindMismatch indicates a value of the wrong kind was supplied to a
	// spring whose kind is fixed at construction.
	ErrKindMismatch = errors.New("value kind mismatch")

	// ErrTooFewPoints indicates an arc-length query on a spline with fewer
	// than three control points, for which no length tables exist.
	ErrTooFewPoints = errors.New("too few control points for arc-length query")

	// ErrDegenerateSpline indicates an arc-length query on a spline whose
	// total measured length is zero (all control points coincident).
	ErrDegenerateSpline = errors.New("degenerate spline with zero arc length")

	// ErrInvalidAlpha indicates a curve query parameter outside [0, 1].
	ErrInvalidAlpha = errors.New("alpha outside [0, 1]")

	// ErrDestroyed indicates use of a spline after Destroy.
	ErrDestroyed = errors.New("spline has been destroyed")
)
