// Command pulseinfo prints the derived properties of a pulse profile.
//
// Usage:
//
//	pulseinfo [flags]
//
// Examples:
//
//	pulseinfo -duty 0.1
//	pulseinfo -duty 0.05 -detrend -dt 1e-3 -freq 716.36 -time 600
//	pulseinfo -duty 0.1 -fft 8
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-pulsar/pulse/profile"
)

func main() {
	duty := flag.Float64("duty", 0.1, "duty cycle (pulse FWHM / period), in (0,1)")
	detrend := flag.Bool("detrend", false, "subtract the mean flux from the profile")
	nphi := flag.Int("nphi", 0, "internal phase bins (0 = automatic)")
	dt := flag.Float64("dt", 1e-3, "time sample width in seconds")
	freq := flag.Float64("freq", 1.0, "pulse frequency in Hz")
	rms := flag.Float64("rms", 1.0, "per-sample noise RMS")
	total := flag.Float64("time", 60.0, "pulse train duration in seconds")
	nfft := flag.Int("fft", 5, "number of leading Fourier coefficients to print")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulseinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints derived properties of a von Mises pulse profile.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	p, err := profile.New(*duty, *detrend, profile.WithPhaseBins(*nphi))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulseinfo: %v\n", err)
		os.Exit(1)
	}

	single, err := p.SinglePulseSNR(*dt, *freq, *rms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulseinfo: %v\n", err)
		os.Exit(1)
	}
	multi, err := p.MultiPulseSNR(*total, *dt, *freq, *rms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulseinfo: %v\n", err)
		os.Exit(1)
	}

	coeffs, err := p.FourierCoefficients(*nfft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulseinfo: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "duty cycle\t%g\n", p.DutyCycle())
	fmt.Fprintf(w, "detrended\t%v\n", p.Detrend())
	fmt.Fprintf(w, "kappa\t%.4f\n", p.Kappa())
	fmt.Fprintf(w, "phase bins\t%d\n", p.PhaseBins())
	fmt.Fprintf(w, "mean flux\t%.6g\n", p.MeanFlux())
	fmt.Fprintf(w, "peak flux\t%.6g\n", p.PointEval(0, 1))
	for m, rho := range coeffs {
		fmt.Fprintf(w, "rho[%d]\t%.6g\n", m, rho)
	}
	fmt.Fprintf(w, "single-pulse SNR\t%.6g\n", single)
	fmt.Fprintf(w, "multi-pulse SNR (%gs)\t%.6g\n", *total, multi)
	w.Flush()
}
