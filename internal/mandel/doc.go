// Package mandel provides the escape-time rendering core for the Mandelbrot set.
//
// A render is a pipeline applied independently to every pixel of a fixed view:
//
//   - [ViewParameters]: pixel dimensions, zoom exponent, centre and iteration cutoff
//   - [ViewParameters.SampleAt]: maps a pixel to a [Sample] on the complex plane
//   - [Evaluate]: escape-time iteration with the cardioid/bulb pre-check
//   - [HSVToRGB]: hue colouring of escaped samples
//   - [Framebuffer]: the write-once pixel buffer handed to a display surface
//   - [Renderer]: orchestrates the pipeline over a compute backend
//
// # Example
//
//	vp := mandel.ViewParameters{Width: 1200, Height: 800, MaxIterations: 600,
//		CenterRe: -0.56267837374, CenterIm: 0.65679461735}
//	fb, err := mandel.NewRenderer().Render(ctx, vp)
//
// # Determinism
//
// Render output is a pure function of the view parameters. The serial and
// parallel backends produce byte-identical buffers because every pixel is
// computed from its own coordinates only and each column is owned by exactly
// one worker.
package mandel
