package motion

// Spring defaults
const (
	// DefaultDamper is the damping ratio assigned at spring construction.
	// 1 is critical damping: the fastest approach with no overshoot.
	DefaultDamper = 1.0

	// DefaultSpeed is the angular frequency assigned at spring construction,
	// in radians per second.
	DefaultSpeed = 1.0

	// DefaultEpsilon is the convergence threshold used by IsAnimating when
	// the caller passes a non-positive epsilon.
	DefaultEpsilon = 1e-4
)

// Spline defaults
const (
	// DefaultResolution is the number of sample segments per curve segment
	// used by Sample.
	DefaultResolution = 10

	// minArcLengthPoints is the control point count below which arc-length
	// tables are not built. Parametric queries remain valid.
	minArcLengthPoints = 3
)

// Value channel layout
const (
	// maxChannels is the widest channel decomposition of any springable
	// kind (oriented pose: x, y, z, yaw, pitch, roll).
	maxChannels = 6

	floatChannels = 1
	vec2Channels  = 2
	vec3Channels  = 3
	dimChannels   = 2
	dim2Channels  = 4
	poseChannels  = 6
	colorChannels = 3
)

// degenerateDirection is the squared tangent norm below which a curve
// tangent is too short to orient along; the nearest node rotation is used
// instead.
const degenerateDirection = 1e-12
