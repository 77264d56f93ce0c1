package engine

import (
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// arcStepsPerSegment is the number of fixed parametric steps (0.01 each)
// used to approximate each segment as a polyline when measuring length.
const arcStepsPerSegment = 100

// ArcTable maps curve arc length to segment-local parameters. Cumulative[i]
// is the approximate length from the first control point through the end of
// segment i; Normalized[i] is Cumulative[i]/Total, so the final entry is
// exactly 1 for any non-degenerate curve.
type ArcTable struct {
	Cumulative []float64
	Normalized []float64
	Total      float64
}

// BuildArcTable measures every segment by fixed-step polyline summation and
// returns the cumulative and normalized length tables.
func BuildArcTable(segments []Basis) ArcTable {
	if len(segments) == 0 {
		return ArcTable{}
	}

	stepLens := make([]float64, arcStepsPerSegment)
	segLens := make([]float64, len(segments))

	for i, b := range segments {
		prev := b.Position(0)
		for k := 1; k <= arcStepsPerSegment; k++ {
			t := float64(k) / arcStepsPerSegment
			cur := b.Position(t)
			stepLens[k-1] = r3.Norm(r3.Sub(cur, prev))
			prev = cur
		}
		segLens[i] = f64.Sum(stepLens)
	}

	table := ArcTable{
		Cumulative: make([]float64, len(segments)),
		Normalized: make([]float64, len(segments)),
	}
	floats.CumSum(table.Cumulative, segLens)
	table.Total = table.Cumulative[len(table.Cumulative)-1]

	if table.Total > 0 {
		f64.Scale(table.Normalized, table.Cumulative, 1/table.Total)
		// Reciprocal scaling can round the final entry off 1; the direct
		// self-division is exact.
		table.Normalized[len(table.Normalized)-1] = table.Total / table.Total
	}
	return table
}

// Degenerate reports whether the measured curve has no usable length
// (missing tables or all control points coincident).
func (t ArcTable) Degenerate() bool {
	return !(t.Total > 0)
}

// Locate maps a normalized arc-length fraction alpha in [0, 1] to the
// earliest segment whose cumulative fraction reaches alpha, plus the local
// parameter within that segment. Zero-length segments resolve to their
// start.
func (t ArcTable) Locate(alpha float64) (segment int, local float64) {
	last := len(t.Normalized) - 1
	for i, upper := range t.Normalized {
		if upper >= alpha {
			lower := 0.0
			if i > 0 {
				lower = t.Normalized[i-1]
			}
			span := upper - lower
			if span <= 0 {
				return i, 0
			}
			return i, (alpha - lower) / span
		}
	}
	return last, 1
}
