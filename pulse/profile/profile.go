package profile

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// extraModes is how many Fourier modes past the grid Nyquist mode are
// kept. The grid resolution guarantee makes these modes negligible, but
// keeping a margin lets the SNR estimators sum past the last mode that
// matters without truncation artifacts.
const extraModes = 10

// gridTolerance bounds the relative error introduced by representing
// the profile as a piecewise-linear phase grid when the grid resolution
// is chosen automatically.
const gridTolerance = 1e-6

// minAutoPhaseBins floors the automatic grid resolution for very broad
// pulses.
const minAutoPhaseBins = 64

// Profile is an immutable periodic pulse-flux model.
//
// All precomputed state is read-only after construction, so a single
// Profile is safe for unsynchronized concurrent use.
type Profile struct {
	dutyCycle float64
	detrend   bool
	kappa     float64

	// nphi is the number of phase bins per period (even). The sampled
	// grids carry nphi+1 entries so interval lookups never wrap
	// mid-interpolation.
	nphi     int
	grid     []float64 // flux at phase i/nphi, detrended if requested
	antider  []float64 // running integral of grid from phase 0
	meanFlux float64   // mean of the raw (pre-detrend) profile

	// fourier[m] is the cosine-series coefficient rho_m of the raw
	// profile for m = 0..nphi/2+extraModes-1, with the DC entry zeroed
	// when detrending.
	fourier []float64
}

// Option configures Profile construction.
type Option func(*config)

type config struct {
	phaseBins int
}

// WithPhaseBins sets the internal grid resolution, rounded up to the
// next even count. Zero (the default) selects a resolution
// automatically from the duty cycle. A caller-forced resolution too
// small for a very sharp pulse is accepted and silently degrades
// accuracy.
func WithPhaseBins(n int) Option {
	return func(c *config) {
		c.phaseBins = n
	}
}

// New constructs a pulse profile for the given duty cycle.
//
// The duty cycle is the pulse full width at half maximum divided by the
// pulse period and must lie in (0,1); 0.1 is a typical pulsar-like
// choice. If detrend is true the mean flux is subtracted from the
// sampled profile, so it integrates to zero over a period.
func New(dutyCycle float64, detrend bool, opts ...Option) (*Profile, error) {
	if err := validateDutyCycle(dutyCycle); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validatePhaseBins(cfg.phaseBins); err != nil {
		return nil, err
	}

	s := math.Sin(math.Pi * dutyCycle / 2)
	kappa := math.Ln2 / (2 * s * s)
	nphi := choosePhaseBins(kappa, cfg.phaseBins)

	p := &Profile{
		dutyCycle: dutyCycle,
		detrend:   detrend,
		kappa:     kappa,
		nphi:      nphi,
	}
	p.build()

	return p, nil
}

// choosePhaseBins returns the grid resolution: the caller's request
// rounded up to even, or, when the request is zero, the smallest even
// count for which piecewise-linear interpolation of the sharpest
// feature stays within gridTolerance. The curvature of the profile at
// the peak is kappa*(2*pi)^2, so linear interpolation over a bin of
// width 1/n errs by at most kappa*(2*pi)^2/(8*n^2).
func choosePhaseBins(kappa float64, requested int) int {
	n := requested
	if n == 0 {
		n = int(math.Ceil(2 * math.Pi * math.Sqrt(kappa/(8*gridTolerance))))
		if n < minAutoPhaseBins {
			n = minAutoPhaseBins
		}
	}
	if n%2 != 0 {
		n++
	}
	return n
}

func (p *Profile) build() {
	n := p.nphi

	raw := make([]float64, n+1)
	for i := 0; i < n; i++ {
		s := math.Sin(math.Pi * float64(i) / float64(n))
		raw[i] = math.Exp(-2 * p.kappa * s * s)
	}
	raw[n] = raw[0]

	// Composite trapezoid over one period; with periodic endpoints this
	// reduces to the rectangle sum.
	h := 1 / float64(n)
	mean := 0.0
	for i := 0; i < n; i++ {
		mean += 0.5 * h * (raw[i] + raw[i+1])
	}
	p.meanFlux = mean

	p.fourier = fourierCoefficients(raw[:n], n/2+extraModes)
	if p.detrend {
		p.fourier[0] = 0
	}

	p.grid = raw
	if p.detrend {
		for i := range p.grid {
			p.grid[i] -= mean
		}
	}

	p.antider = make([]float64, n+1)
	for i := 0; i < n; i++ {
		p.antider[i+1] = p.antider[i] + 0.5*h*(p.grid[i]+p.grid[i+1])
	}
}

// fourierCoefficients computes the leading real cosine-series
// coefficients of the sampled periodic profile,
//
//	rho_m = (1/n) * sum_j raw[j] * cos(2*pi*m*j/n),
//
// via a real-input FFT. The profile is even in phase, so the transform
// is purely real up to rounding; modes past the Nyquist index alias
// onto their mirror image exactly as the direct cosine sum would.
func fourierCoefficients(raw []float64, nout int) []float64 {
	n := len(raw)
	bins := fft.FFTReal(raw)

	out := make([]float64, nout)
	for m := range out {
		out[m] = real(bins[m%n]) / float64(n)
	}
	return out
}

// DutyCycle returns the pulse FWHM divided by the pulse period.
func (p *Profile) DutyCycle() float64 { return p.dutyCycle }

// Detrend reports whether the mean flux is subtracted from the profile.
func (p *Profile) Detrend() bool { return p.detrend }

// Kappa returns the derived narrowness parameter. Smaller duty cycles
// give larger kappa and sharper pulses.
func (p *Profile) Kappa() float64 { return p.kappa }

// PhaseBins returns the number of phase bins per period used by the
// internal grids.
func (p *Profile) PhaseBins() int { return p.nphi }

// MeanFlux returns the average flux of the raw (pre-detrend) profile
// over one period, for unit amplitude.
func (p *Profile) MeanFlux() float64 { return p.meanFlux }
