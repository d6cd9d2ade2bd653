package viz

import (
	"strings"

	"github.com/san-kum/mandel/internal/mandel"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells; each cell holds 2x4 dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set raises the dot at (x, y) in dot coordinates. The canvas spans
// (Width*2) x (Height*4) dots; points outside are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Silhouette draws the pixels of fb that hold the background colour, i.e. the
// samples classified as bounded, onto a canvas cols cells wide.
func Silhouette(fb *mandel.Framebuffer, background mandel.Color, cols int) *Canvas {
	if cols <= 0 || fb.Width == 0 || fb.Height == 0 {
		return NewCanvas(0, 0)
	}

	dotsX := cols * 2
	dotsY := dotsX * fb.Height / fb.Width
	rows := (dotsY + 3) / 4
	c := NewCanvas(cols, rows)

	for y := 0; y < dotsY; y++ {
		py := y * fb.Height / dotsY
		for x := 0; x < dotsX; x++ {
			px := x * fb.Width / dotsX
			if fb.ColorAt(px, py) == background {
				c.Set(x, y)
			}
		}
	}
	return c
}
