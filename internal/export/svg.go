package export

import (
	"fmt"
	"image"
	"strings"

	"github.com/san-kum/mandel/internal/mandel"
)

// FramebufferToSVG converts fb to an SVG document with fb placed at origin,
// sized like Compose. Each run of equal colours within a row becomes one
// rect; pixels matching background are left to the background fill.
func FramebufferToSVG(fb *mandel.Framebuffer, origin image.Point, background mandel.Color, scale float64) string {
	if fb == nil || fb.Width == 0 || fb.Height == 0 {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	origin.X = max(origin.X, 0)
	origin.Y = max(origin.Y, 0)

	width := float64(origin.X+fb.Width) * scale
	height := float64(origin.Y+fb.Height) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background.Hex()))

	translated := origin != image.Point{}
	if translated {
		sb.WriteString(fmt.Sprintf("<g transform=\"translate(%g,%g)\">\n", float64(origin.X)*scale, float64(origin.Y)*scale))
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; {
			c := fb.ColorAt(x, y)
			run := 1
			for x+run < fb.Width && fb.ColorAt(x+run, y) == c {
				run++
			}
			if c != background {
				sb.WriteString(fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>
`, float64(x)*scale, float64(y)*scale, float64(run)*scale, scale, c.Hex()))
			}
			x += run
		}
	}

	if translated {
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}
