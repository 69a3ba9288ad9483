// Package profile implements a periodic pulse-flux model for simulating
// pulsar-like signals.
//
// The model is a von Mises profile,
//
//	rho(phi) = exp(-2*kappa*sin(pi*phi)^2)
//
// where phi is the pulse phase in periods and kappa is a narrowness
// parameter derived from the duty cycle D (pulse FWHM divided by
// period) via kappa = ln(2) / (2*sin(pi*D/2)^2). The peak flux is 1 by
// construction.
//
// A [Profile] is immutable after construction. It precomputes a sampled
// phase grid, the running integral of that grid, and the Fourier
// coefficients of the profile, which makes three families of queries
// cheap:
//
//   - instantaneous flux at a phase ([Profile.PointEval])
//   - average flux over arbitrary phase intervals, evaluated in bulk
//     for time-sampled simulations ([Profile.EvalIntegratedSamples])
//   - closed-form detectability estimates that account for finite
//     sample width ([Profile.SinglePulseSNR], [Profile.MultiPulseSNR])
//
// Time-to-phase conversion is delegated to a [phase.Mapper]
// collaborator supplied per call; the profile never performs timing
// computations itself.
package profile
