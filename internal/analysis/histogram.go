package analysis

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mandel/internal/mandel"
)

// Histogram counts escaped pixels per iteration bin. The cutoff is split
// into bins equal ranges; bins above the cutoff are clamped to it.
func Histogram(em *mandel.EscapeMap, bins int) []float64 {
	if bins <= 0 || em.MaxIterations <= 0 {
		return nil
	}
	if bins > em.MaxIterations {
		bins = em.MaxIterations
	}

	hist := make([]float64, bins)
	for _, res := range em.Results {
		if !res.Escaped {
			continue
		}
		b := res.Iteration * bins / em.MaxIterations
		if b >= bins {
			b = bins - 1
		}
		hist[b]++
	}
	return hist
}

// PlotHistogram renders hist as an ASCII line graph.
func PlotHistogram(hist []float64, width, height int, caption string) string {
	if len(hist) == 0 {
		return ""
	}
	return asciigraph.Plot(hist,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}
