package mandel

import "fmt"

// ViewParameters fixes the region of the plane being sampled and the
// resolution and cutoff used to sample it. A value is never mutated once a
// render has started.
type ViewParameters struct {
	Width         int
	Height        int
	Zoom          int
	CenterRe      float64
	CenterIm      float64
	MaxIterations int
}

func (vp ViewParameters) Validate() error {
	if vp.Width <= 0 {
		return &ViewError{Field: "width", Value: vp.Width}
	}
	if vp.Height <= 0 {
		return &ViewError{Field: "height", Value: vp.Height}
	}
	if vp.MaxIterations <= 0 {
		return &ViewError{Field: "max iterations", Value: vp.MaxIterations}
	}
	return nil
}

func (vp ViewParameters) String() string {
	return fmt.Sprintf("%dx%d @ %+.11f%+.11fi zoom 2^%d, %d iterations",
		vp.Width, vp.Height, vp.CenterRe, vp.CenterIm, vp.Zoom, vp.MaxIterations)
}

// Sample is a point c on the complex plane.
type Sample struct {
	Re, Im float64
}

// EscapeResult classifies a sample. When Escaped is false the sample is
// bounded: either the pre-check placed it inside the cardioid/bulb region or
// its orbit stayed within the escape radius for every iteration.
type EscapeResult struct {
	Escaped bool
	// Iteration is the 0-based index at which the orbit left the radius.
	Iteration int
	// Steps counts executed iterations; zero when the pre-check decided.
	Steps int
}

// Bounded is the result for samples that never escape.
var Bounded = EscapeResult{}

// EscapedAt returns the result for an orbit that escaped at iteration i.
func EscapedAt(i int) EscapeResult {
	return EscapeResult{Escaped: true, Iteration: i, Steps: i + 1}
}

// PreChecked reports whether the result came from the cardioid/bulb test
// without entering the iteration loop.
func (r EscapeResult) PreChecked() bool {
	return !r.Escaped && r.Steps == 0
}

func (r EscapeResult) String() string {
	if r.Escaped {
		return fmt.Sprintf("escaped(%d)", r.Iteration)
	}
	return "bounded"
}
