package profile

import (
	"fmt"
	"math"
)

// SinglePulseSNR returns the expected matched-filter signal-to-noise
// ratio of one pulse, for unit amplitude.
//
// The measurement is modeled as binning the profile into time samples
// of width dtSample with independent Gaussian noise of RMS sampleRMS
// per sample. Averaging over a finite bin attenuates Fourier mode m,
// which lives at frequency m*pulseFreq, by sinc(m*pulseFreq*dtSample);
// the attenuated mode powers combine Parseval-style over the
// 1/(pulseFreq*dtSample) samples spanning a period. If the profile is
// detrended the DC mode carries no signal.
//
// The result is an approximation: the true SNR depends weakly on how
// pulse arrival aligns with sample boundaries, which this closed form
// averages away.
func (p *Profile) SinglePulseSNR(dtSample, pulseFreq, sampleRMS float64) (float64, error) {
	if err := validateSampling(dtSample, pulseFreq, sampleRMS); err != nil {
		return 0, err
	}

	sum := 0.0
	for m, rho := range p.fourier {
		w := sinc(float64(m) * pulseFreq * dtSample)
		term := rho * w
		term *= term
		if m > 0 {
			term *= 2
		}
		sum += term
	}

	return math.Sqrt(sum/(pulseFreq*dtSample)) / sampleRMS, nil
}

// MultiPulseSNR returns the expected signal-to-noise ratio of a pulse
// train of duration totalTime, for unit amplitude.
//
// Pulses combine independently, so the squared single-pulse SNR scales
// by the pulse count totalTime*pulseFreq. The single-pulse caveat about
// sample-boundary alignment applies here too.
func (p *Profile) MultiPulseSNR(totalTime, dtSample, pulseFreq, sampleRMS float64) (float64, error) {
	if totalTime <= 0 || math.IsNaN(totalTime) || math.IsInf(totalTime, 0) {
		return 0, fmt.Errorf("profile: total time must be > 0: %v", totalTime)
	}

	single, err := p.SinglePulseSNR(dtSample, pulseFreq, sampleRMS)
	if err != nil {
		return 0, err
	}
	return single * math.Sqrt(totalTime*pulseFreq), nil
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
