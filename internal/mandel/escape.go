package mandel

import "math"

const escapeRadiusSq = 4.0

// InCardioid reports whether c falls inside the polar approximation of the
// main cardioid and period-2 bulb. The test is deliberately loose near the
// boundary; points it accepts are never iterated.
func InCardioid(c Sample) bool {
	dx := c.Re - 0.25
	p := math.Sqrt(float64(dx*dx) + float64(c.Im*c.Im))
	theta := math.Atan2(c.Im, dx)
	pc := 0.5 - float64(0.5*math.Cos(theta))
	return p <= pc
}

// Evaluate iterates z -> z^2 + c from z = 0 until |z|^2 exceeds 4 or
// maxIterations is reached.
//
// Explicit float64 conversions stop the compiler from fusing multiply-add
// pairs, which keeps escape counts identical on every architecture.
func Evaluate(c Sample, maxIterations int) EscapeResult {
	if InCardioid(c) {
		return Bounded
	}

	var re, im float64
	for i := 0; i < maxIterations; i++ {
		re, im = float64(re*re)-float64(im*im)+c.Re, float64(2*re*im)+c.Im
		if float64(re*re)+float64(im*im) > escapeRadiusSq {
			return EscapedAt(i)
		}
	}

	return EscapeResult{Steps: maxIterations}
}
