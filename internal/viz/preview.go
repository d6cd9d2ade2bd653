package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandel/internal/mandel"
)

const halfBlock = "▀"

// PreviewRows is the number of text lines a preview cols cells wide takes.
func PreviewRows(fb *mandel.Framebuffer, cols int) int {
	if cols <= 0 || fb.Width == 0 {
		return 0
	}
	pixelRows := max(1, cols*fb.Height/fb.Width)
	return (pixelRows + 1) / 2
}

// FitColumns returns the widest preview that fits in maxCols x maxRows cells.
func FitColumns(fb *mandel.Framebuffer, maxCols, maxRows int) int {
	cols := min(maxCols, fb.Width)
	for cols > 1 && PreviewRows(fb, cols) > maxRows {
		cols--
	}
	return max(cols, 0)
}

// Preview renders fb cols cells wide. Each cell shows two vertically
// stacked pixels: the upper as foreground of "▀", the lower as background.
func Preview(fb *mandel.Framebuffer, cols int) string {
	rows := PreviewRows(fb, cols)
	if rows == 0 {
		return ""
	}
	pixelRows := rows * 2
	srcRows := max(1, cols*fb.Height/fb.Width)

	sample := func(x, y int) mandel.Color {
		if y >= srcRows {
			y = srcRows - 1
		}
		return fb.ColorAt(x*fb.Width/cols, y*fb.Height/srcRows)
	}

	var b strings.Builder
	for y := 0; y < pixelRows; y += 2 {
		for x := 0; x < cols; x++ {
			top := sample(x, y)
			bottom := sample(x, y+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			b.WriteString(style.Render(halfBlock))
		}
		if y+2 < pixelRows {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
