package phase_test

import (
	"fmt"

	"github.com/cwbudde/algo-pulsar/pulse/phase"
)

func ExampleConstant() {
	pm := phase.Constant{Freq: 2, Phi0: 0.5}

	boundaries := make([]float64, 5)
	pm.PhiSequence(boundaries, 0, 1)

	for _, phi := range boundaries {
		fmt.Printf("%.2f\n", phi)
	}
	// Output:
	// 0.50
	// 1.00
	// 1.50
	// 2.00
	// 2.50
}

func ExampleConstantAcceleration() {
	// A pulsar spinning down from 10 Hz at -0.5 Hz/s.
	pm := phase.ConstantAcceleration{F0: 10, Fdot: -0.5}

	fmt.Printf("%.2f\n", pm.Phi(1))
	fmt.Printf("%.2f\n", pm.Phi(2))
	// Output:
	// 9.75
	// 19.00
}
