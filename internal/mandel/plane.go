package mandel

import "math"

// Scale is the plane distance between adjacent pixels. It is derived from
// the width alone and applied to both axes.
func (vp ViewParameters) Scale() float64 {
	return 1 / (float64(vp.Width) * math.Exp2(float64(vp.Zoom)))
}

// SampleAt maps pixel (x, y) to its sample point.
func (vp ViewParameters) SampleAt(x, y int) Sample {
	return vp.sampleAt(x, y, vp.Scale())
}

func (vp ViewParameters) sampleAt(x, y int, scale float64) Sample {
	return Sample{
		Re: vp.CenterRe + float64((float64(x)-float64(vp.Width)*0.5)*scale),
		Im: vp.CenterIm + float64((float64(y)-float64(vp.Height)*0.5)*scale),
	}
}

// Span returns the extent of the plane covered by the view on each axis.
func (vp ViewParameters) Span() (re, im float64) {
	scale := vp.Scale()
	return float64(vp.Width) * scale, float64(vp.Height) * scale
}

// Bounds returns the samples of the top-left and bottom-right pixels.
func (vp ViewParameters) Bounds() (topLeft, bottomRight Sample) {
	return vp.SampleAt(0, 0), vp.SampleAt(vp.Width-1, vp.Height-1)
}
