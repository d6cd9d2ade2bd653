package analysis

import (
	"fmt"

	"github.com/san-kum/mandel/internal/mandel"
)

type Summary struct {
	Total   int
	Escaped int
	Bounded int
	// PreChecked pixels are bounded pixels the cardioid test decided without
	// iterating.
	PreChecked int
	// Steps is the total number of iterations executed for the whole view.
	Steps         int
	MinIteration  int
	MaxIteration  int
	MeanIteration float64
}

func Summarize(em *mandel.EscapeMap) Summary {
	s := Summary{Total: len(em.Results), MinIteration: -1, MaxIteration: -1}

	sum := 0
	for _, res := range em.Results {
		s.Steps += res.Steps
		if !res.Escaped {
			s.Bounded++
			if res.PreChecked() {
				s.PreChecked++
			}
			continue
		}

		s.Escaped++
		sum += res.Iteration
		if s.MinIteration < 0 || res.Iteration < s.MinIteration {
			s.MinIteration = res.Iteration
		}
		if res.Iteration > s.MaxIteration {
			s.MaxIteration = res.Iteration
		}
	}

	if s.Escaped > 0 {
		s.MeanIteration = float64(sum) / float64(s.Escaped)
	}
	return s
}

// EscapedFraction is the share of pixels that received a colour.
func (s Summary) EscapedFraction() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Escaped) / float64(s.Total)
}

// SkippedSteps estimates the iterations the pre-check saved, assuming every
// pre-checked pixel would otherwise have run to the cutoff.
func (s Summary) SkippedSteps(maxIterations int) int {
	return s.PreChecked * maxIterations
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pixels: %d escaped (%.1f%%), %d bounded (%d pre-checked), iterations min %d max %d mean %.2f",
		s.Total, s.Escaped, 100*s.EscapedFraction(), s.Bounded, s.PreChecked,
		s.MinIteration, s.MaxIteration, s.MeanIteration)
}
