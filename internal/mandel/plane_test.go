package mandel

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func TestSampleAt(t *testing.T) {
	g := NewWithT(t)
	vp := ViewParameters{Width: 4, Height: 4, CenterRe: -0.5, MaxIterations: 50}

	g.Expect(vp.Scale()).To(Equal(0.25))
	g.Expect(vp.SampleAt(0, 0)).To(Equal(Sample{Re: -1, Im: -0.5}))
	g.Expect(vp.SampleAt(2, 2)).To(Equal(Sample{Re: -0.5, Im: 0}))
	g.Expect(vp.SampleAt(3, 1)).To(Equal(Sample{Re: -0.25, Im: -0.25}))
}

func TestSampleAtUsesWidthForBothAxes(t *testing.T) {
	g := NewWithT(t)
	vp := ViewParameters{Width: 200, Height: 50, MaxIterations: 1}

	a := vp.SampleAt(100, 25)
	b := vp.SampleAt(101, 26)
	g.Expect(b.Re - a.Re).To(Equal(1.0 / 200))
	g.Expect(b.Im - a.Im).To(Equal(1.0 / 200))

	re, im := vp.Span()
	g.Expect(re).To(Equal(1.0))
	g.Expect(im).To(Equal(0.25))
}

func TestZoomHalvesSpan(t *testing.T) {
	g := NewWithT(t)
	vp := ViewParameters{Width: 1200, Height: 800, CenterRe: -0.56267837374, CenterIm: 0.65679461735, MaxIterations: 600}

	for zoom := -3; zoom < 8; zoom++ {
		vp.Zoom = zoom
		re0, im0 := vp.Span()
		vp.Zoom = zoom + 1
		re1, im1 := vp.Span()

		g.Expect(re1).To(Equal(re0*0.5), "zoom %d", zoom)
		g.Expect(im1).To(Equal(im0*0.5), "zoom %d", zoom)
		g.Expect(vp.SampleAt(vp.Width/2, vp.Height/2)).To(Equal(Sample{Re: vp.CenterRe, Im: vp.CenterIm}))
	}
}

func TestBounds(t *testing.T) {
	g := NewWithT(t)
	vp := ViewParameters{Width: 4, Height: 4, CenterRe: -0.5, MaxIterations: 50}

	topLeft, bottomRight := vp.Bounds()
	g.Expect(topLeft).To(Equal(Sample{Re: -1, Im: -0.5}))
	g.Expect(bottomRight).To(Equal(Sample{Re: -0.25, Im: 0.25}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		vp    ViewParameters
		field string
	}{
		{"zero width", ViewParameters{Width: 0, Height: 4, MaxIterations: 1}, "width"},
		{"negative width", ViewParameters{Width: -1, Height: 4, MaxIterations: 1}, "width"},
		{"zero height", ViewParameters{Width: 4, Height: 0, MaxIterations: 1}, "height"},
		{"negative height", ViewParameters{Width: 4, Height: -8, MaxIterations: 1}, "height"},
		{"zero iterations", ViewParameters{Width: 4, Height: 4, MaxIterations: 0}, "max iterations"},
		{"negative iterations", ViewParameters{Width: 4, Height: 4, MaxIterations: -3}, "max iterations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			err := tt.vp.Validate()
			g.Expect(err).To(MatchError(ErrInvalidViewParameters))

			var ve *ViewError
			g.Expect(errors.As(err, &ve)).To(BeTrue())
			g.Expect(ve.Field).To(Equal(tt.field))
		})
	}

	g := NewWithT(t)
	g.Expect(ViewParameters{Width: 1, Height: 1, MaxIterations: 1, Zoom: -4}.Validate()).To(Succeed())
}
