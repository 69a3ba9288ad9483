// Package phase models the mapping from time to pulse phase.
//
// A [Mapper] converts absolute times into accumulated pulse phase
// (measured in periods, so phase advances by 1 per pulse period).
// The profile engine consumes a Mapper per call and never owns one,
// which keeps the flux model decoupled from any particular spin or
// timing solution.
//
// Provided models, from simplest upward:
//
//   - [Constant]:             fixed spin frequency
//   - [ConstantAcceleration]: linear spin-frequency drift
//   - [MapperFunc]:           adapter for ad-hoc phase functions
package phase
