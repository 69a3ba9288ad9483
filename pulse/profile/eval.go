package profile

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-pulsar/pulse/phase"
)

// phiBlockSize is the number of time samples whose phase boundaries are
// requested from the mapper per batch.
const phiBlockSize = 1024

// evalScratch holds pooled working memory for batched interval
// evaluation, so concurrent calls on the same Profile never share
// mutable state.
type evalScratch struct {
	phis []float64
	vals []float64
}

var evalPool = sync.Pool{
	New: func() any { return &evalScratch{} },
}

func getEvalScratch(n int) *evalScratch {
	s := evalPool.Get().(*evalScratch)
	if cap(s.phis) < phiBlockSize+1 {
		s.phis = make([]float64, phiBlockSize+1)
	}
	if cap(s.vals) < n {
		s.vals = make([]float64, n)
	} else {
		s.vals = s.vals[:n]
	}
	return s
}

func putEvalScratch(s *evalScratch) {
	evalPool.Put(s)
}

// PointEval returns the instantaneous flux at pulse phase phi, scaled
// by amplitude. The phase is wrapped into [0,1), so negative and
// multi-period inputs are valid. If the profile was built with detrend
// the returned flux is detrended.
func (p *Profile) PointEval(phi, amplitude float64) float64 {
	w := phi - math.Floor(phi)
	x := w * float64(p.nphi)
	i := int(x)
	if i > p.nphi-1 {
		i = p.nphi - 1
	}
	t := x - float64(i)
	return amplitude * (p.grid[i] + t*(p.grid[i+1]-p.grid[i]))
}

// EvalIntegratedSamples simulates len(out) consecutive time samples.
//
// The samples tile [t0, t1): sample i covers [t0+i*dt, t0+(i+1)*dt)
// with dt = (t1-t0)/len(out). For each sample the mapper supplies the
// phase interval covered, and out[i] receives the average flux over
// that interval scaled by amplitude. Sample boundaries are requested
// from the mapper in blocks, so time-varying spin models are evaluated
// once per boundary.
func (p *Profile) EvalIntegratedSamples(out []float64, t0, t1 float64, pm phase.Mapper, amplitude float64) error {
	s, err := p.integratedSamples(out, t0, t1, pm)
	if err != nil {
		return err
	}
	vecmath.ScaleBlock(out, s.vals, amplitude)
	putEvalScratch(s)
	return nil
}

// AddIntegratedSamples is like [Profile.EvalIntegratedSamples] but
// accumulates into out instead of overwriting it, which is how
// multiple sources are combined into one simulated time series.
func (p *Profile) AddIntegratedSamples(out []float64, t0, t1 float64, pm phase.Mapper, amplitude float64) error {
	s, err := p.integratedSamples(out, t0, t1, pm)
	if err != nil {
		return err
	}
	if amplitude != 1 {
		for i := range s.vals {
			s.vals[i] *= amplitude
		}
	}
	vecmath.AddBlockInPlace(out, s.vals)
	putEvalScratch(s)
	return nil
}

func (p *Profile) integratedSamples(out []float64, t0, t1 float64, pm phase.Mapper) (*evalScratch, error) {
	n := len(out)
	if n == 0 {
		return nil, fmt.Errorf("profile: sample count must be > 0")
	}
	if !(t1 > t0) {
		return nil, fmt.Errorf("profile: time bounds must satisfy t1 > t0: [%v, %v]", t0, t1)
	}
	if pm == nil {
		return nil, errNilMapper
	}

	dt := (t1 - t0) / float64(n)
	s := getEvalScratch(n)

	for b := 0; b < n; b += phiBlockSize {
		nb := n - b
		if nb > phiBlockSize {
			nb = phiBlockSize
		}
		tb0 := t0 + float64(b)*dt
		tb1 := t0 + float64(b+nb)*dt

		phis := s.phis[:nb+1]
		pm.PhiSequence(phis, tb0, tb1)

		for j := 0; j < nb; j++ {
			if phis[j+1] < phis[j] {
				putEvalScratch(s)
				return nil, fmt.Errorf("%w: phi(%v)=%v > phi(%v)=%v",
					errNonMonotonic, tb0+float64(j)*dt, phis[j], tb0+float64(j+1)*dt, phis[j+1])
			}
			s.vals[b+j] = p.intervalMean(phis[j], phis[j+1])
		}
	}

	return s, nil
}

// intervalMean returns the average flux over phase interval
// [phi0, phi1] for unit amplitude. The interval may span any number of
// whole periods; whole periods contribute the full-period integral and
// the fractional remainder is an antiderivative lookup.
func (p *Profile) intervalMean(phi0, phi1 float64) float64 {
	d := phi1 - phi0
	if d == 0 {
		return p.PointEval(phi0, 1)
	}

	// Shift so the lower bound lands in [0,1); periodicity makes the
	// integral invariant under whole-period shifts.
	shift := math.Floor(phi0)
	lo := phi0 - shift
	hi := phi1 - shift

	whole := math.Floor(hi)
	frac := hi - whole

	period := p.antider[p.nphi]
	integral := whole*period + p.antiderAt(frac) - p.antiderAt(lo)
	return integral / d
}

// antiderAt returns the integral of the grid profile from phase 0 to
// phase x, for x in [0,1]. Within a bin the profile is linear, so the
// antiderivative is quadratic; interpolating with the neighboring grid
// slopes keeps the lookup exact for the piecewise-linear grid model
// and reduces to the tabulated values at grid points.
func (p *Profile) antiderAt(x float64) float64 {
	xn := x * float64(p.nphi)
	i := int(xn)
	if i > p.nphi-1 {
		i = p.nphi - 1
	}
	t := xn - float64(i)
	h := 1 / float64(p.nphi)
	return p.antider[i] + h*t*(p.grid[i]+0.5*t*(p.grid[i+1]-p.grid[i]))
}

// EvalIntegratedSampleSlow returns the average flux over phase interval
// [phi0, phi1] scaled by amplitude, computed by direct quadrature over
// the phase grid instead of the antiderivative lookup.
//
// This is a correctness oracle for the fast interval path and runs in
// time proportional to the interval length; it is not meant for
// production simulation.
func (p *Profile) EvalIntegratedSampleSlow(phi0, phi1, amplitude float64) (float64, error) {
	if phi1 < phi0 {
		return 0, fmt.Errorf("profile: phase bounds must satisfy phi1 >= phi0: [%v, %v]", phi0, phi1)
	}
	if phi1 == phi0 {
		return p.PointEval(phi0, amplitude), nil
	}

	// Quadrature nodes: the interval endpoints plus every grid boundary
	// strictly inside, so the trapezoid rule sees each linear segment
	// of the grid profile whole.
	h := 1 / float64(p.nphi)
	i0 := int(math.Floor(phi0/h)) + 1

	xs := make([]float64, 0, int((phi1-phi0)/h)+2)
	xs = append(xs, phi0)
	for i := i0; float64(i)*h < phi1; i++ {
		xs = append(xs, float64(i)*h)
	}
	xs = append(xs, phi1)

	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.PointEval(x, 1)
	}

	integral := integrate.Trapezoidal(xs, ys)
	return amplitude * integral / (phi1 - phi0), nil
}
