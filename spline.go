package motion

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-motion/internal/engine"
	"github.com/tphakala/go-motion/internal/orient"
)

// Alignment selects how a spline query derives orientation.
type Alignment int

const (
	// AlignTrack follows the curve: orientation looks along the analytic
	// tangent (first derivative) of the position polynomial.
	AlignTrack Alignment = iota

	// AlignNodes blends the surrounding control points' stored rotations
	// with a smoothstep-eased spherical interpolation, independent of the
	// translational curve shape.
	AlignNodes
)

// String returns the alignment's name.
func (a Alignment) String() string {
	switch a {
	case AlignTrack:
		return "Track"
	case AlignNodes:
		return "Nodes"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Spline is a uniform Catmull-Rom curve through an ordered sequence of
// oriented control points. The curve passes through every control point; at
// the ends the missing window neighbor is the endpoint itself, which
// flattens curvature there. Downstream consumers rely on this boundary
// policy.
//
// Arc-length tables are rebuilt eagerly on every control-point or
// resolution mutation. They require at least three control points; with
// fewer, parametric queries still work but arc-length queries are
// rejected.
//
// Like Spring, a Spline is exclusively owned by its holder and performs no
// internal locking.
type Spline struct {
	points     []Pose
	resolution int

	bases []engine.Basis
	table engine.ArcTable

	destroyed  bool
	destroying []func()
}

// SplineOption configures a spline at construction.
type SplineOption func(*Spline) error

// WithResolution sets the number of sample segments per curve segment used
// by Sample. Must be at least 1.
func WithResolution(resolution int) SplineOption {
	return func(s *Spline) error {
		if resolution < 1 {
			return fmt.Errorf("%w: resolution must be >= 1, got %d", ErrInvalidConfig, resolution)
		}
		s.resolution = resolution
		return nil
	}
}

// NewSpline creates a spline through the given control points. At least one
// point is required; at least three are needed before arc-length queries
// become available.
func NewSpline(points []Pose, opts ...SplineOption) (*Spline, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: at least one control point required", ErrInvalidConfig)
	}

	s := &Spline{
		points:     append([]Pose(nil), points...),
		resolution: DefaultResolution,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.rebuild()
	return s, nil
}

// rebuild recomputes the per-segment bases and, when enough points exist,
// the arc-length tables. Called on every control-point or resolution
// mutation.
func (s *Spline) rebuild() {
	n := len(s.points)
	if n < 2 {
		s.bases = nil
		s.table = engine.ArcTable{}
		return
	}

	s.bases = make([]engine.Basis, n-1)
	for i := range s.bases {
		s.bases[i] = s.window(i)
	}

	if n < minArcLengthPoints {
		s.table = engine.ArcTable{}
		return
	}
	s.table = engine.BuildArcTable(s.bases)
}

// window builds the clamped four-point window for segment i: indices past
// either end reuse the endpoint control point as its own neighbor.
func (s *Spline) window(i int) engine.Basis {
	n := len(s.points)
	return engine.NewBasis(
		s.points[max(i-1, 0)].Position,
		s.points[i].Position,
		s.points[min(i+1, n-1)].Position,
		s.points[min(i+2, n-1)].Position,
	)
}

// ControlPoints returns a copy of the control points.
func (s *Spline) ControlPoints() []Pose {
	return append([]Pose(nil), s.points...)
}

// SetControlPoints replaces the control points and rebuilds all derived
// tables synchronously.
func (s *Spline) SetControlPoints(points []Pose) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: at least one control point required", ErrInvalidConfig)
	}
	s.points = append([]Pose(nil), points...)
	s.rebuild()
	return nil
}

// Resolution returns the sample density used by Sample.
func (s *Spline) Resolution() int {
	return s.resolution
}

// SetResolution changes the sample density and rebuilds derived tables.
func (s *Spline) SetResolution(resolution int) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if resolution < 1 {
		return fmt.Errorf("%w: resolution must be >= 1, got %d", ErrInvalidConfig, resolution)
	}
	s.resolution = resolution
	s.rebuild()
	return nil
}

// Length returns the approximate total arc length, or 0 when no tables
// exist.
func (s *Spline) Length() float64 {
	return s.table.Total
}

// NormalizedDistances returns a copy of the cumulative arc-length fractions
// per segment. Empty when no tables exist. For a non-degenerate spline the
// sequence is strictly increasing and ends at exactly 1.
func (s *Spline) NormalizedDistances() []float64 {
	return append([]float64(nil), s.table.Normalized...)
}

// PointAt evaluates the curve at the parametric alpha in [0, 1], mapped
// uniformly across segments (not across arc length). alpha==1 returns the
// last control point's pose exactly.
func (s *Spline) PointAt(alpha float64, alignment Alignment) (Pose, error) {
	if s.destroyed {
		return Pose{}, ErrDestroyed
	}
	// Negated range test so NaN is rejected too.
	if !(alpha >= 0 && alpha <= 1) {
		return Pose{}, fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha)
	}
	if len(s.points) == 1 {
		return s.points[0], nil
	}
	if alpha == 1 {
		return s.points[len(s.points)-1], nil
	}

	scaled := float64(len(s.bases)) * alpha
	idx := int(scaled)
	return s.evaluate(idx, scaled-float64(idx), alignment), nil
}

// PointAtArcLength evaluates the curve at the arc-length fraction alpha in
// [0, 1]: equal steps in alpha travel approximately equal distances along
// the curve, correcting for the non-uniform speed of the parametric form.
// Requires arc-length tables (three or more control points, non-zero
// length).
func (s *Spline) PointAtArcLength(alpha float64, alignment Alignment) (Pose, error) {
	if s.destroyed {
		return Pose{}, ErrDestroyed
	}
	if len(s.points) < minArcLengthPoints {
		return Pose{}, fmt.Errorf("%w: have %d", ErrTooFewPoints, len(s.points))
	}
	if s.table.Degenerate() {
		return Pose{}, ErrDegenerateSpline
	}
	if !(alpha >= 0 && alpha <= 1) {
		return Pose{}, fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha)
	}

	idx, t := s.table.Locate(alpha)
	return s.evaluate(idx, t, alignment), nil
}

// evaluate computes the pose on segment idx at local parameter t.
func (s *Spline) evaluate(idx int, t float64, alignment Alignment) Pose {
	b := s.bases[idx]
	pos := b.Position(t)

	var rot quat.Number
	switch alignment {
	case AlignTrack:
		dir := b.Derivative(t)
		if r3.Norm2(dir) < degenerateDirection {
			// Stationary point on the curve; fall back to the nearest
			// node's stored rotation.
			rot = s.points[idx].Orientation
		} else {
			rot = orient.LookAlong(dir, orient.Up)
		}
	case AlignNodes:
		next := min(idx+1, len(s.points)-1)
		rot = orient.Slerp(
			s.points[idx].Orientation,
			s.points[next].Orientation,
			orient.Smoothstep(t),
		)
	default:
		panic(fmt.Sprintf("motion: unknown alignment %d", int(alignment)))
	}

	return Pose{Position: pos, Orientation: rot}
}

// Sample evaluates the whole curve at the configured resolution: resolution
// poses per segment plus the final control point. This is the regenerable
// polyline representation hosts typically render.
func (s *Spline) Sample(alignment Alignment) []Pose {
	if s.destroyed || len(s.points) < 2 {
		return nil
	}
	segments := len(s.bases)
	out := make([]Pose, 0, segments*s.resolution+1)
	for i := range segments {
		for k := range s.resolution {
			out = append(out, s.evaluate(i, float64(k)/float64(s.resolution), alignment))
		}
	}
	out = append(out, s.points[len(s.points)-1])
	return out
}

// OnDestroying registers a one-time observer invoked just before the spline
// tears down. Registering on an already-destroyed spline invokes fn
// immediately.
func (s *Spline) OnDestroying(fn func()) {
	if fn == nil {
		return
	}
	if s.destroyed {
		fn()
		return
	}
	s.destroying = append(s.destroying, fn)
}

// Destroy fires the destroying notification once, detaches all observers
// and releases derived tables. Further queries return ErrDestroyed.
// Destroy is idempotent.
func (s *Spline) Destroy() {
	if s.destroyed {
		return
	}
	for _, fn := range s.destroying {
		fn()
	}
	s.destroyed = true
	s.destroying = nil
	s.bases = nil
	s.table = engine.ArcTable{}
}
