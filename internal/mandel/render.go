package mandel

import (
	"context"

	"github.com/san-kum/mandel/internal/compute"
)

type Option func(*Renderer)

// WithBackend sets the backend that partitions columns across workers. The
// default picks one from the view width.
func WithBackend(b compute.Backend) Option {
	return func(r *Renderer) { r.backend = b }
}

// WithBackground sets the colour left in bounded pixels.
func WithBackground(c Color) Option {
	return func(r *Renderer) { r.background = c }
}

// WithPalette toggles the precomputed iteration palette. Output is the same
// either way; disabling it converts every escaped pixel individually.
func WithPalette(enabled bool) Option {
	return func(r *Renderer) { r.palette = enabled }
}

// Renderer runs the per-pixel pipeline over a whole view. A Renderer holds no
// per-render state and may be shared.
type Renderer struct {
	backend    compute.Backend
	background Color
	palette    bool
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{background: Black, palette: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Background() Color { return r.background }

// Backend returns the backend used for a view of the given width.
func (r *Renderer) Backend(width int) compute.Backend {
	if r.backend != nil {
		return r.backend
	}
	return compute.AutoSelectBackend(width)
}

// Render computes every pixel of vp. Invalid parameters are rejected before
// any pixel is computed. Bounded pixels keep the background colour.
func (r *Renderer) Render(ctx context.Context, vp ViewParameters) (*Framebuffer, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	fb := NewFramebuffer(vp.Width, vp.Height, r.background)

	colorOf := func(res EscapeResult) (Color, bool) { return ColorFor(res, vp.MaxIterations) }
	if r.palette {
		colorOf = colorerFor(vp.MaxIterations, vp.Width*vp.Height)
	}

	err := r.visit(ctx, vp, func(x, y int, res EscapeResult) {
		if c, ok := colorOf(res); ok {
			fb.Set(x, y, c)
		}
	})
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// Trace records the escape result of every pixel of vp without colouring.
func (r *Renderer) Trace(ctx context.Context, vp ViewParameters) (*EscapeMap, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	em := &EscapeMap{
		Width:         vp.Width,
		Height:        vp.Height,
		MaxIterations: vp.MaxIterations,
		Results:       make([]EscapeResult, vp.Width*vp.Height),
	}
	err := r.visit(ctx, vp, func(x, y int, res EscapeResult) {
		em.Results[x+vp.Width*y] = res
	})
	if err != nil {
		return nil, err
	}
	return em, nil
}

// visit calls fn once per pixel. Columns are split across the backend's
// workers; within a column y ascends.
func (r *Renderer) visit(ctx context.Context, vp ViewParameters, fn func(x, y int, res EscapeResult)) error {
	scale := vp.Scale()

	r.Backend(vp.Width).For(vp.Width, func(start, end int) {
		for x := start; x < end; x++ {
			if ctx.Err() != nil {
				return
			}
			for y := 0; y < vp.Height; y++ {
				fn(x, y, Evaluate(vp.sampleAt(x, y, scale), vp.MaxIterations))
			}
		}
	})

	return ctx.Err()
}

// colorerFor returns a palette lookup when the palette has no more entries
// than there are pixels, and per-pixel conversion otherwise.
func colorerFor(maxIterations, pixels int) func(EscapeResult) (Color, bool) {
	if maxIterations > pixels {
		return func(res EscapeResult) (Color, bool) { return ColorFor(res, maxIterations) }
	}
	return NewPalette(maxIterations).ColorFor
}

// Render is the serial reference render: x outer, y inner, one goroutine.
func Render(vp ViewParameters) (*Framebuffer, error) {
	return NewRenderer(WithBackend(compute.NewSerialBackend())).Render(context.Background(), vp)
}

// EscapeMap holds the escape result of every pixel, indexed like Framebuffer.
type EscapeMap struct {
	Width, Height int
	MaxIterations int
	Results       []EscapeResult
}

func (em *EscapeMap) At(x, y int) EscapeResult {
	return em.Results[x+em.Width*y]
}

// Colorize produces the framebuffer Render would have produced.
func (em *EscapeMap) Colorize(background Color) *Framebuffer {
	fb := NewFramebuffer(em.Width, em.Height, background)
	colorOf := colorerFor(em.MaxIterations, len(em.Results))
	for i, res := range em.Results {
		if c, ok := colorOf(res); ok {
			fb.Pix[i] = c
		}
	}
	return fb
}
