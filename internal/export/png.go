package export

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/san-kum/mandel/internal/mandel"
)

// Compose places fb at origin on a canvas filled with background that is
// just large enough to hold it.
func Compose(fb *mandel.Framebuffer, origin image.Point, background mandel.Color) *image.RGBA {
	origin.X = max(origin.X, 0)
	origin.Y = max(origin.Y, 0)

	dst := image.NewRGBA(image.Rect(0, 0, origin.X+fb.Width, origin.Y+fb.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(dst, fb.Bounds().Add(origin), fb, image.Point{}, draw.Src)
	return dst
}

func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// ReadPNG decodes a PNG written by WritePNG back into a framebuffer.
func ReadPNG(r io.Reader) (*mandel.Framebuffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	fb := mandel.NewFramebuffer(b.Dx(), b.Dy(), mandel.Black)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			fb.Set(x, y, mandel.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)})
		}
	}
	return fb, nil
}
