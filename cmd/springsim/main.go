package main

import (
	"flag"
	"fmt"
	"log"

	motion "github.com/tphakala/go-motion"
)

func main() {
	// Command-line flags
	var (
		damper   = flag.Float64("damper", defaultDamper, "Damping ratio (0=undamped, 1=critical, >1=overdamped)")
		speed    = flag.Float64("speed", defaultSpeed, "Angular frequency in rad/s")
		target   = flag.Float64("target", defaultTarget, "Target value the spring animates toward")
		initial  = flag.Float64("initial", 0, "Initial position")
		velocity = flag.Float64("velocity", 0, "Initial velocity")
		duration = flag.Float64("duration", defaultDuration, "Simulated duration in seconds")
		rate     = flag.Float64("rate", defaultRate, "Samples per simulated second")
		demo     = flag.Bool("demo", false, "Compare the three damping regimes")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	if *duration <= 0 || *rate <= 0 {
		log.Fatalf("duration and rate must be positive, got %v and %v", *duration, *rate)
	}

	dt := 1 / *rate
	steps := int(*duration * *rate)

	clock := motion.NewManualClock()
	spring, err := motion.NewScalarSpring(*initial,
		motion.WithClock(clock.Now),
		motion.WithDamper(*damper),
		motion.WithSpeed(*speed),
	)
	if err != nil {
		log.Fatalf("Failed to create spring: %v", err)
	}
	if err := spring.SetTarget(motion.Float(*target)); err != nil {
		log.Fatalf("Failed to set target: %v", err)
	}
	if *velocity != 0 {
		if err := spring.SetVelocity(motion.Float(*velocity)); err != nil {
			log.Fatalf("Failed to set velocity: %v", err)
		}
	}

	fmt.Println("time,position,velocity")
	for i := range steps + 1 {
		clock.Set(float64(i) * dt)
		fmt.Printf("%.6f,%.9f,%.9f\n",
			float64(i)*dt,
			spring.Position().Float(),
			spring.Velocity().Float())
	}
}

func runDemo() {
	fmt.Println("=== Spring Damping Regime Comparison ===")
	fmt.Println()

	regimes := []struct {
		name   string
		damper float64
	}{
		{"Underdamped (0.2)", 0.2},
		{"Critical     (1.0)", 1.0},
		{"Overdamped   (3.0)", 3.0},
	}

	fmt.Printf("Animating 0 -> %g over %g seconds, speed %g rad/s\n\n", demoTarget, demoDuration, defaultSpeed)

	dt := demoDuration / demoSteps
	for _, regime := range regimes {
		samples, err := motion.Trajectory(
			motion.Float(0), motion.Float(demoTarget),
			regime.damper, defaultSpeed, dt, demoSteps,
		)
		if err != nil {
			log.Fatalf("Failed to simulate %s: %v", regime.name, err)
		}

		fmt.Printf("%s (est. settle %.1fs):\n",
			regime.name, motion.SettleTime(regime.damper, defaultSpeed, 0))
		for i, v := range samples {
			fmt.Printf("  t=%5.2fs  %8.5f  %s\n", float64(i)*dt, v.Float(), bar(v.Float()))
		}
		fmt.Println()
	}
}

// bar renders a crude horizontal gauge so regime shapes are visible at a
// glance in a terminal.
func bar(v float64) string {
	const width = 40
	n := int(v / demoTarget * width)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = '#'
	}
	return string(out)
}
