package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	motion "github.com/tphakala/go-motion"
)

const defaultPoints = "0,0,0;10,0,0;15,8,0;25,10,5"

func main() {
	// Command-line flags
	var (
		points    = flag.String("points", defaultPoints, "Control points as x,y,z triples separated by ';'")
		samples   = flag.Int("samples", 50, "Number of samples along the curve")
		alignment = flag.String("align", "track", "Orientation alignment: track or nodes")
		arcLength = flag.Bool("arc-length", true, "Sample by arc-length fraction instead of curve parameter")
	)
	flag.Parse()

	controlPoints, err := parsePoints(*points)
	if err != nil {
		log.Fatalf("Failed to parse control points: %v", err)
	}
	if *samples < 2 {
		log.Fatalf("samples must be at least 2, got %d", *samples)
	}

	align, err := parseAlignment(*alignment)
	if err != nil {
		log.Fatalf("Failed to parse alignment: %v", err)
	}

	spline, err := motion.NewSpline(controlPoints)
	if err != nil {
		log.Fatalf("Failed to create spline: %v", err)
	}

	fmt.Printf("# %d control points, arc length %.4f, alignment %s\n",
		len(controlPoints), spline.Length(), align)
	fmt.Println("alpha,x,y,z,yaw,pitch,roll")

	for i := range *samples {
		alpha := float64(i) / float64(*samples-1)

		var pose motion.Pose
		if *arcLength {
			pose, err = spline.PointAtArcLength(alpha, align)
		} else {
			pose, err = spline.PointAt(alpha, align)
		}
		if err != nil {
			log.Fatalf("Query failed at alpha=%v: %v", alpha, err)
		}

		yaw, pitch, roll := pose.Euler()
		fmt.Printf("%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			alpha, pose.Position.X, pose.Position.Y, pose.Position.Z, yaw, pitch, roll)
	}
}

func parseAlignment(s string) (motion.Alignment, error) {
	switch strings.ToLower(s) {
	case "track":
		return motion.AlignTrack, nil
	case "nodes":
		return motion.AlignNodes, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q (want track or nodes)", s)
	}
}

// parsePoints parses "x,y,z;x,y,z;..." into identity-oriented poses.
func parsePoints(s string) ([]motion.Pose, error) {
	var out []motion.Pose
	for _, triple := range strings.Split(s, ";") {
		triple = strings.TrimSpace(triple)
		if triple == "" {
			continue
		}
		parts := strings.Split(triple, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("point %q: want 3 coordinates, got %d", triple, len(parts))
		}

		var coords [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", triple, err)
			}
			coords[i] = v
		}

		pose := motion.IdentityPose()
		pose.Position = r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}
		out = append(out, pose)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no control points in %q", s)
	}
	return out, nil
}
