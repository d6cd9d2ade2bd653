package mandel

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
)

// Framebuffer is a Width x Height grid of colours stored row-major: pixel
// (x, y) lives at Pix[x + Width*y].
type Framebuffer struct {
	Width, Height int
	Pix           []Color
}

func NewFramebuffer(width, height int, background Color) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
	if background != (Color{}) {
		for i := range fb.Pix {
			fb.Pix[i] = background
		}
	}
	return fb
}

// Set writes c at (x, y). Writing outside the buffer is a programming error
// and panics.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("mandel: pixel (%d, %d) outside %dx%d framebuffer", x, y, fb.Width, fb.Height))
	}
	fb.Pix[x+fb.Width*y] = c
}

func (fb *Framebuffer) ColorAt(x, y int) Color {
	return fb.Pix[x+fb.Width*y]
}

func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image; points outside the buffer are transparent.
func (fb *Framebuffer) At(x, y int) color.Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.ColorAt(x, y)
}

// Packed returns the buffer as 0xRRGGBB words in the same order as Pix.
func (fb *Framebuffer) Packed() []uint32 {
	out := make([]uint32, len(fb.Pix))
	for i, c := range fb.Pix {
		out[i] = c.Packed()
	}
	return out
}

func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	if other == nil || fb.Width != other.Width || fb.Height != other.Height {
		return false
	}
	for i := range fb.Pix {
		if fb.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Checksum is an FNV-1a digest of the dimensions and pixels.
func (fb *Framebuffer) Checksum() uint64 {
	h := fnv.New64a()
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(fb.Width))
	h.Write(word[:])
	binary.BigEndian.PutUint32(word[:], uint32(fb.Height))
	h.Write(word[:])
	for _, c := range fb.Pix {
		h.Write([]byte{c.R, c.G, c.B})
	}
	return h.Sum64()
}

// Count returns how many pixels hold c.
func (fb *Framebuffer) Count(c Color) int {
	n := 0
	for _, p := range fb.Pix {
		if p == c {
			n++
		}
	}
	return n
}
