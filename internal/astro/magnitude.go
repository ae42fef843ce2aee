package astro

import "math"

// DefaultMagStep is the magnitude at which the size scaling switches to the
// shallower regime.
const DefaultMagStep = 3.5

// MagToSize maps an apparent magnitude to a display-size scalar. Below step
// the scaling follows 10^(-0.25*mag); at and above it, the exponent flattens
// to -0.4*(mag-step) - 0.25*step so faint stars stay visible dots while the
// display is dominated by bright-star size differences. The two regimes agree
// at the breakpoint.
func MagToSize(mag, step float64) float64 {
	if mag < step {
		return math.Pow(10, -0.25*mag)
	}
	return math.Pow(10, -0.4*(mag-step)-0.25*step)
}

// MagToSizes applies MagToSize element-wise over a magnitude table.
func MagToSizes(mags []float64, step float64) []float64 {
	sizes := make([]float64, len(mags))
	for i, m := range mags {
		sizes[i] = MagToSize(m, step)
	}
	return sizes
}

// MagClass buckets a magnitude into one of seven marker classes: 0 for the
// brightest stars, 6 for the faintest, rounding in between.
func MagClass(mag float64) int {
	switch {
	case mag < 0.5:
		return 0
	case mag > 5.5:
		return 6
	default:
		// Ties round to even so class boundaries split evenly.
		return int(math.RoundToEven(mag))
	}
}
