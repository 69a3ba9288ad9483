package profile

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pulsar/internal/testutil"
	"github.com/cwbudde/algo-pulsar/pulse/phase"
)

func TestSNRValidation(t *testing.T) {
	p, err := New(0.1, true, WithPhaseBins(256))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	cases := []struct {
		name string
		call func() (float64, error)
	}{
		{"zero sample width", func() (float64, error) { return p.SinglePulseSNR(0, 1, 1) }},
		{"negative sample width", func() (float64, error) { return p.SinglePulseSNR(-1e-3, 1, 1) }},
		{"zero frequency", func() (float64, error) { return p.SinglePulseSNR(1e-3, 0, 1) }},
		{"zero rms", func() (float64, error) { return p.SinglePulseSNR(1e-3, 1, 0) }},
		{"zero total time", func() (float64, error) { return p.MultiPulseSNR(0, 1e-3, 1, 1) }},
		{"negative total time", func() (float64, error) { return p.MultiPulseSNR(-5, 1e-3, 1, 1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.call(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestMultiPulseScaling(t *testing.T) {
	p, err := New(0.1, true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	const (
		dt   = 1e-3
		freq = 2.5
		rms  = 0.7
	)
	single, err := p.SinglePulseSNR(dt, freq, rms)
	if err != nil {
		t.Fatalf("SinglePulseSNR error: %v", err)
	}

	for _, total := range []float64{0.4, 10, 3600} {
		multi, err := p.MultiPulseSNR(total, dt, freq, rms)
		if err != nil {
			t.Fatalf("MultiPulseSNR error: %v", err)
		}
		testutil.RequireNearlyEqual(t, multi, single*math.Sqrt(total*freq), 1e-12)
	}
}

func TestSNRScalesInverselyWithNoise(t *testing.T) {
	p, err := New(0.1, true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a, err := p.SinglePulseSNR(1e-3, 1, 1)
	if err != nil {
		t.Fatalf("SinglePulseSNR error: %v", err)
	}
	b, err := p.SinglePulseSNR(1e-3, 1, 4)
	if err != nil {
		t.Fatalf("SinglePulseSNR error: %v", err)
	}
	testutil.RequireNearlyEqual(t, a, 4*b, 1e-12)
}

func TestSNRPeriodWideSamples(t *testing.T) {
	// Samples a full period wide average every non-DC mode to zero:
	// sinc(m) vanishes for integer m >= 1.
	const freq = 2.0

	t.Run("detrended profile is undetectable", func(t *testing.T) {
		p, err := New(0.1, true, WithPhaseBins(512))
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		snr, err := p.SinglePulseSNR(1/freq, freq, 1)
		if err != nil {
			t.Fatalf("SinglePulseSNR error: %v", err)
		}
		testutil.RequireNearlyEqual(t, snr, 0, 1e-12)
	})

	t.Run("raw profile keeps only its mean", func(t *testing.T) {
		p, err := New(0.1, false, WithPhaseBins(512))
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		snr, err := p.SinglePulseSNR(1/freq, freq, 1)
		if err != nil {
			t.Fatalf("SinglePulseSNR error: %v", err)
		}
		testutil.RequireNearlyEqual(t, snr, p.MeanFlux(), 1e-9)
	})
}

func TestSNRFinerSamplingDetectsMore(t *testing.T) {
	p, err := New(0.1, true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	prev := 0.0
	for i, dt := range []float64{0.5, 0.1, 0.01, 0.001} {
		snr, err := p.SinglePulseSNR(dt, 1, 1)
		if err != nil {
			t.Fatalf("SinglePulseSNR error: %v", err)
		}
		if i > 0 && snr <= prev {
			t.Fatalf("dt=%v snr=%v did not improve on %v", dt, snr, prev)
		}
		prev = snr
	}
}

func TestSNRMatchesSimulatedMatchedFilter(t *testing.T) {
	// Simulate one period of a detrended pulse and compute the
	// matched-filter SNR sqrt(sum s_i^2)/rms directly. With the pulse
	// frequency at 1 and the sample count a multiple of the period the
	// discrete modes are orthogonal, so the closed form should agree up
	// to the grid interpolation error.
	p, err := New(0.2, true, WithPhaseBins(4096))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	const (
		nsamp = 4096
		rms   = 0.7
	)
	out := make([]float64, nsamp)
	if err := p.EvalIntegratedSamples(out, 0, 1, phase.Constant{Freq: 1}, 1); err != nil {
		t.Fatalf("EvalIntegratedSamples error: %v", err)
	}

	sum := 0.0
	for _, v := range out {
		sum += v * v
	}
	simulated := math.Sqrt(sum) / rms

	predicted, err := p.SinglePulseSNR(1.0/nsamp, 1, rms)
	if err != nil {
		t.Fatalf("SinglePulseSNR error: %v", err)
	}
	testutil.RequireNearlyEqual(t, predicted, simulated, 1e-3)
}
