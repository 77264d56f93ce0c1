// Package motion provides two reusable numerical primitives for property
// animation: a closed-form damped harmonic oscillator (Spring) and a
// uniform Catmull-Rom interpolation curve through oriented control points
// (Spline).
//
// # Features
//
//   - Closed-form spring simulation: exact evaluation at any elapsed time,
//     no fixed-step integration and no accumulated drift
//   - All three damping regimes (underdamped, critical, overdamped) with
//     continuous behavior across the regime boundary
//   - Springable value kinds: scalar, 2D/3D vector, 1D/2D scale-offset
//     pair, oriented pose and RGB color, all sharing one code path via a
//     closed per-kind channel decomposition
//   - Shortest-path angle unwrapping for pose targets
//   - Impulses, time skip, lazy read-computed state with write-triggered
//     snapshots, and a tick-driven observation loop with a guaranteed
//     final emit
//   - Catmull-Rom splines with parametric and arc-length-normalized
//     queries, tangent-following (Track) and rotation-blending (Nodes)
//     orientation alignment, and eagerly rebuilt arc-length tables
//
// # Quick start
//
// Animate a scalar toward a target:
//
//	spring, err := motion.NewScalarSpring(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	spring.SetTarget(motion.Float(10))
//
//	// ... later, e.g. once per frame:
//	pos := spring.Position().Float()
//
// Query a curve through oriented points:
//
//	spline, err := motion.NewSpline(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pose, err := spline.PointAtArcLength(0.5, motion.AlignTrack)
//
// # Clocks and ticks
//
// Springs read time through an injectable Clock (monotonic seconds). The
// default is wall-clock seconds since process start; ManualClock provides
// deterministic stepping for simulation and tests. The observation loop
// (Bind/Unbind) is drained by calling Tick once per host frame or step;
// the package schedules nothing itself.
//
// # Conventions
//
// Poses use a right-handed frame with +X forward and +Z up; Euler angles
// are intrinsic Z-Y-X (yaw, pitch, roll). Pose springs interpolate the six
// scalar channels independently, which is why orientation is carried as
// Euler angles rather than a quaternion inside the spring.
//
// # Thread safety
//
// A Spring or Spline instance is exclusively owned by its holder. All
// mutation happens synchronously in a single logical thread of control;
// adapt with external serialization (one mutex per instance) if a
// multi-threaded host needs to share one.
package motion
