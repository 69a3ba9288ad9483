package profile

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FourierCoefficients returns the cosine-series coefficients rho_m of
// the profile for m = 0..nout-1, in ascending mode order.
//
// The profile is symmetric in phase, so the coefficients are real and
// rho_m = rho_{-m}. The DC coefficient rho_0 equals the mean flux, or 0
// if the profile is detrended. If nout is zero it defaults to the
// internally computed count, PhaseBins()/2+10; larger requests are
// zero-padded, smaller ones truncated.
func (p *Profile) FourierCoefficients(nout int) ([]float64, error) {
	return FourierCoefficientsT[float64](p, nout)
}

// FourierCoefficients32 is the float32 form of
// [Profile.FourierCoefficients].
func FourierCoefficients32(p *Profile, nout int) ([]float32, error) {
	return FourierCoefficientsT[float32](p, nout)
}

// FourierCoefficientsT returns the profile Fourier coefficients in the
// requested floating-point precision, with the same defaulting,
// truncation, and zero-padding semantics as
// [Profile.FourierCoefficients].
func FourierCoefficientsT[F algofft.Float](p *Profile, nout int) ([]F, error) {
	if nout < 0 {
		return nil, fmt.Errorf("profile: requested coefficient count must be >= 0: %d", nout)
	}
	if nout == 0 {
		nout = len(p.fourier)
	}

	out := make([]F, nout)
	n := min(nout, len(p.fourier))
	for m := 0; m < n; m++ {
		out[m] = F(p.fourier[m])
	}
	return out, nil
}
