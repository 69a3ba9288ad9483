package profile

import (
	"errors"
	"fmt"
	"math"
)

var (
	errNilMapper    = errors.New("profile: phase mapper must not be nil")
	errNonMonotonic = errors.New("profile: phase mapper must be monotonically non-decreasing")
)

func validateDutyCycle(d float64) error {
	if math.IsNaN(d) || d <= 0 || d >= 1 {
		return fmt.Errorf("profile: duty cycle must be in (0,1): %v", d)
	}
	return nil
}

func validatePhaseBins(n int) error {
	if n < 0 {
		return fmt.Errorf("profile: phase bin count must be >= 0: %d", n)
	}
	return nil
}

func validateSampling(dtSample, pulseFreq, sampleRMS float64) error {
	if dtSample <= 0 || math.IsNaN(dtSample) || math.IsInf(dtSample, 0) {
		return fmt.Errorf("profile: sample width must be > 0: %v", dtSample)
	}
	if pulseFreq <= 0 || math.IsNaN(pulseFreq) || math.IsInf(pulseFreq, 0) {
		return fmt.Errorf("profile: pulse frequency must be > 0: %v", pulseFreq)
	}
	if sampleRMS <= 0 || math.IsNaN(sampleRMS) || math.IsInf(sampleRMS, 0) {
		return fmt.Errorf("profile: sample rms must be > 0: %v", sampleRMS)
	}
	return nil
}
