package mandel

import (
	"image/color"
	"testing"

	. "github.com/onsi/gomega"
)

func TestHSVToRGBSectors(t *testing.T) {
	tests := []struct {
		h    float32
		want Color
	}{
		{0, Color{255, 0, 0}},
		{60, Color{255, 255, 0}},
		{120, Color{0, 255, 0}},
		{180, Color{0, 255, 255}},
		{240, Color{0, 0, 255}},
		{300, Color{255, 0, 255}},
		{359, Color{255, 0, 4}},
	}

	for _, tt := range tests {
		if got := HSVToRGB(tt.h, 255, 255); got != tt.want {
			t.Errorf("h=%v: expected %v, got %v", tt.h, tt.want, got)
		}
	}
}

func TestHSVToRGBNormalizesHue(t *testing.T) {
	g := NewWithT(t)
	g.Expect(HSVToRGB(360, 255, 255)).To(Equal(HSVToRGB(0, 255, 255)))
	g.Expect(HSVToRGB(720, 255, 255)).To(Equal(HSVToRGB(0, 255, 255)))
	g.Expect(HSVToRGB(548, 255, 255)).To(Equal(HSVToRGB(188, 255, 255)))
	g.Expect(HSVToRGB(-30, 255, 255)).To(Equal(HSVToRGB(0, 255, 255)))
}

func TestHSVToRGBClampsInputs(t *testing.T) {
	g := NewWithT(t)
	g.Expect(HSVToRGB(30, 127, 200)).To(Equal(Color{200, 150, 100}))
	g.Expect(HSVToRGB(90, 255, 100)).To(Equal(Color{50, 100, 0}))
	g.Expect(HSVToRGB(90, 1000, 1000)).To(Equal(HSVToRGB(90, 255, 255)))
	g.Expect(HSVToRGB(90, -5, 255)).To(Equal(Color{255, 255, 255}))
	g.Expect(HSVToRGB(90, 255, -5)).To(Equal(Black))
}

// Components are truncated, not rounded: hue 195.2 gives G = 190.4.
func TestHSVToRGBTruncates(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Hue(1, 50)).To(BeNumerically("~", 195.2, 1e-4))
	g.Expect(HSVToRGB(Hue(1, 50), 255, 255)).To(Equal(Color{0, 190, 255}))
	g.Expect(HSVToRGB(Hue(4, 50), 255, 255)).To(Equal(Color{0, 98, 255}))
}

func TestHue(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Hue(0, 600)).To(Equal(float32(188)))
	g.Expect(Hue(10, 50)).To(Equal(float32(260)))
	g.Expect(Hue(25, 50)).To(Equal(float32(368)))
}

func TestColorFor(t *testing.T) {
	g := NewWithT(t)

	_, ok := ColorFor(Bounded, 50)
	g.Expect(ok).To(BeFalse())
	_, ok = ColorFor(EscapeResult{Steps: 50}, 50)
	g.Expect(ok).To(BeFalse())

	tests := []struct {
		iter int
		want Color
	}{
		{0, Color{0, 220, 255}},
		{2, Color{0, 159, 255}},
		{3, Color{0, 129, 255}},
		{10, Color{85, 0, 255}},
		{12, Color{146, 0, 255}},
		{25, Color{255, 33, 0}},
		{49, Color{0, 251, 255}},
	}
	for _, tt := range tests {
		c, ok := ColorFor(EscapedAt(tt.iter), 50)
		g.Expect(ok).To(BeTrue())
		g.Expect(c).To(Equal(tt.want), "iteration %d", tt.iter)
	}
}

func TestPaletteMatchesColorFor(t *testing.T) {
	g := NewWithT(t)
	for _, cutoff := range []int{1, 7, 50, 600} {
		p := NewPalette(cutoff)
		g.Expect(p).To(HaveLen(cutoff))
		for i := 0; i < cutoff; i++ {
			want, _ := ColorFor(EscapedAt(i), cutoff)
			got, ok := p.ColorFor(EscapedAt(i))
			g.Expect(ok).To(BeTrue())
			g.Expect(got).To(Equal(want))
		}
		_, ok := p.ColorFor(Bounded)
		g.Expect(ok).To(BeFalse())
	}
}

func TestColorPacking(t *testing.T) {
	g := NewWithT(t)
	c := Color{R: 0x12, G: 0xab, B: 0xff}
	g.Expect(c.Packed()).To(Equal(uint32(0x12abff)))
	g.Expect(c.Hex()).To(Equal("#12abff"))
	g.Expect(Unpack(0xff12abff)).To(Equal(c))

	r, gr, b, a := c.RGBA()
	g.Expect([]uint32{r, gr, b, a}).To(Equal([]uint32{0x1212, 0xabab, 0xffff, 0xffff}))
	g.Expect(color.RGBAModel.Convert(c)).To(Equal(color.RGBA{R: 0x12, G: 0xab, B: 0xff, A: 0xff}))
}
