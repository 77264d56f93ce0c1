package main

// Default command-line flag values
const (
	defaultDamper   = 1.0  // Critical damping
	defaultSpeed    = 1.0  // Angular frequency in rad/s
	defaultTarget   = 10.0 // Target value
	defaultDuration = 5.0  // Simulated seconds
	defaultRate     = 60.0 // Samples per simulated second
)

// Demo parameters
const (
	demoTarget   = 1.0
	demoDuration = 10.0
	demoSteps    = 20
)
