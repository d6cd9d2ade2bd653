// Package display hands finished framebuffers to whatever presents them.
package display

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/mandel/internal/export"
	"github.com/san-kum/mandel/internal/mandel"
	"github.com/san-kum/mandel/internal/viz"
)

// Surface presents a completed framebuffer. Present is called once per
// render and must not modify fb.
type Surface interface {
	Present(fb *mandel.Framebuffer, width, height int, origin image.Point) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(fb *mandel.Framebuffer, width, height int, origin image.Point) error

func (f SurfaceFunc) Present(fb *mandel.Framebuffer, width, height int, origin image.Point) error {
	return f(fb, width, height, origin)
}

// FileSurface writes the framebuffer to Path; the extension picks the format.
type FileSurface struct {
	Path       string
	Background mandel.Color
	SVGScale   float64
}

// SupportedFormats lists the extensions FileSurface understands.
var SupportedFormats = []string{".png", ".svg"}

func (s *FileSurface) Present(fb *mandel.Framebuffer, width, height int, origin image.Point) error {
	if err := checkDims(fb, width, height); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(s.Path))
	if ext != ".png" && ext != ".svg" {
		return fmt.Errorf("display: unsupported output format %q (supported: %v)", ext, SupportedFormats)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".svg":
		_, err = io.WriteString(f, export.FramebufferToSVG(fb, origin, s.Background, s.SVGScale))
	default:
		err = export.WritePNG(f, export.Compose(fb, origin, s.Background))
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// TerminalSurface prints a true-colour preview to Out. Columns is the preview
// width in cells; the origin becomes leading blank lines and columns.
type TerminalSurface struct {
	Out     io.Writer
	Columns int
}

func (s *TerminalSurface) Present(fb *mandel.Framebuffer, width, height int, origin image.Point) error {
	if err := checkDims(fb, width, height); err != nil {
		return err
	}

	cols := s.Columns
	if cols <= 0 {
		cols = min(width, 80)
	}

	pad := strings.Repeat(" ", max(origin.X, 0))
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(origin.Y, 0)))
	for _, line := range strings.Split(viz.Preview(fb, cols), "\n") {
		b.WriteString(pad + line + "\n")
	}

	_, err := io.WriteString(s.Out, b.String())
	return err
}

// Multi presents to every surface in order and stops at the first error.
type Multi []Surface

func (m Multi) Present(fb *mandel.Framebuffer, width, height int, origin image.Point) error {
	for _, s := range m {
		if err := s.Present(fb, width, height, origin); err != nil {
			return err
		}
	}
	return nil
}

func checkDims(fb *mandel.Framebuffer, width, height int) error {
	if fb == nil {
		return fmt.Errorf("display: nil framebuffer")
	}
	if fb.Width != width || fb.Height != height {
		return fmt.Errorf("display: framebuffer is %dx%d, presented as %dx%d", fb.Width, fb.Height, width, height)
	}
	return nil
}
