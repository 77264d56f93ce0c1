// Command springtone renders a spring impulse response to a WAV file. An
// underdamped oscillator at audio-rate speed is a decaying tone: the damper
// sets how fast it fades, the speed sets its pitch.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	motion "github.com/tphakala/go-motion"
)

const (
	defaultSampleRate = 44100
	defaultFrequency  = 440.0 // A4
	defaultDamper     = 0.002
	defaultDuration   = 2.0
	defaultAmplitude  = 0.8

	bitDepth  = 16
	pcmFormat = 1 // uncompressed PCM
	maxInt16  = 32767
)

func main() {
	// Command-line flags
	var (
		output     = flag.String("output", "springtone.wav", "Output WAV file")
		frequency  = flag.Float64("frequency", defaultFrequency, "Tone frequency in Hz")
		damper     = flag.Float64("damper", defaultDamper, "Damping ratio; smaller rings longer")
		duration   = flag.Float64("duration", defaultDuration, "Duration in seconds")
		sampleRate = flag.Int("sample-rate", defaultSampleRate, "Sample rate in Hz")
		amplitude  = flag.Float64("amplitude", defaultAmplitude, "Peak amplitude in [0, 1]")
	)
	flag.Parse()

	if *damper < 0 || *damper >= 1 {
		log.Fatalf("damper must be in [0, 1) for an audible ring, got %v", *damper)
	}
	if *frequency <= 0 || *duration <= 0 || *sampleRate <= 0 {
		log.Fatalf("frequency, duration and sample-rate must be positive")
	}

	samples, err := renderImpulse(*frequency, *damper, *amplitude, *duration, *sampleRate)
	if err != nil {
		log.Fatalf("Failed to render impulse response: %v", err)
	}

	if err := writeWAV(*output, samples, *sampleRate); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}

	fmt.Printf("Wrote %s: %.1f Hz tone, damper %g, %d samples at %d Hz\n",
		*output, *frequency, *damper, len(samples), *sampleRate)
}

// renderImpulse kicks a resting spring once and samples its displacement at
// audio rate. The spring's angular frequency is 2*pi*f; the impulse velocity
// is scaled so the first oscillation peak lands near the requested amplitude.
func renderImpulse(frequency, damper, amplitude, duration float64, sampleRate int) ([]float64, error) {
	omega := 2 * math.Pi * frequency

	clock := motion.NewManualClock()
	spring, err := motion.NewScalarSpring(0,
		motion.WithClock(clock.Now),
		motion.WithDamper(damper),
		motion.WithSpeed(omega),
	)
	if err != nil {
		return nil, err
	}
	// Peak displacement of an impulse response is roughly v0/omega.
	if err := spring.Impulse(motion.Float(amplitude * omega)); err != nil {
		return nil, err
	}

	n := int(duration * float64(sampleRate))
	dt := 1 / float64(sampleRate)
	out := make([]float64, n)
	for i := range out {
		clock.Set(float64(i) * dt)
		out[i] = spring.Position().Float()
	}
	return out, nil
}

// writeWAV encodes mono float samples as 16-bit PCM.
func writeWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		buf.Data[i] = int(s * maxInt16)
	}

	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
