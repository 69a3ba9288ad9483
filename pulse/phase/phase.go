package phase

// Mapper maps time to accumulated pulse phase.
//
// Phase is measured in periods: it advances by exactly 1 over one pulse
// period and is not wrapped into [0,1). Implementations must be
// monotonically non-decreasing in time; consumers are free to reject
// mappers that violate this.
type Mapper interface {
	// Phi returns the phase at time t.
	Phi(t float64) float64

	// PhiSequence fills dst with phases at len(dst) uniformly spaced
	// times spanning [t0, t1] inclusive. A single-element dst receives
	// the phase at t0.
	PhiSequence(dst []float64, t0, t1 float64)
}

// MapperFunc adapts a plain phase function to the [Mapper] interface.
type MapperFunc func(t float64) float64

// Phi returns f(t).
func (f MapperFunc) Phi(t float64) float64 { return f(t) }

// PhiSequence evaluates f at uniformly spaced times spanning [t0, t1].
func (f MapperFunc) PhiSequence(dst []float64, t0, t1 float64) {
	fillSequence(dst, t0, t1, f)
}

// Constant is a constant spin-frequency phase model:
//
//	phi(t) = Phi0 + Freq*t
type Constant struct {
	// Freq is the pulse frequency (pulses per unit time).
	Freq float64
	// Phi0 is the phase at t=0.
	Phi0 float64
}

// Phi returns the phase at time t.
func (c Constant) Phi(t float64) float64 {
	return c.Phi0 + c.Freq*t
}

// PhiSequence fills dst with phases at uniformly spaced times spanning [t0, t1].
func (c Constant) PhiSequence(dst []float64, t0, t1 float64) {
	fillSequence(dst, t0, t1, c.Phi)
}

// ConstantAcceleration is a phase model with a linear spin-frequency
// drift, as produced for example by a pulsar in a binary orbit observed
// over a short stretch:
//
//	phi(t) = Phi0 + F0*(t-T0) + (Fdot/2)*(t-T0)^2
type ConstantAcceleration struct {
	// Phi0 is the phase at reference time T0.
	Phi0 float64
	// F0 is the pulse frequency at reference time T0.
	F0 float64
	// Fdot is the frequency derivative.
	Fdot float64
	// T0 is the reference time.
	T0 float64
}

// Phi returns the phase at time t.
func (c ConstantAcceleration) Phi(t float64) float64 {
	dt := t - c.T0
	return c.Phi0 + (c.F0+0.5*c.Fdot*dt)*dt
}

// PhiSequence fills dst with phases at uniformly spaced times spanning [t0, t1].
func (c ConstantAcceleration) PhiSequence(dst []float64, t0, t1 float64) {
	fillSequence(dst, t0, t1, c.Phi)
}

func fillSequence(dst []float64, t0, t1 float64, phi func(float64) float64) {
	n := len(dst)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = phi(t0)
		return
	}
	step := (t1 - t0) / float64(n-1)
	for i := range dst {
		dst[i] = phi(t0 + float64(i)*step)
	}
	// Avoid accumulating step rounding into the final boundary.
	dst[n-1] = phi(t1)
}
