package mandel

import "testing"

func TestEvaluateEscapeBoundary(t *testing.T) {
	// |z|^2 is exactly 4 after the first step; escape needs a strict excess.
	res := Evaluate(Sample{Re: 2}, 50)
	if !res.Escaped || res.Iteration != 1 {
		t.Fatalf("expected escaped(1), got %v", res)
	}
	if res.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", res.Steps)
	}
}

func TestEvaluateCardioidSkip(t *testing.T) {
	for _, c := range []Sample{{Re: -0.5}, {Re: 0}, {Re: 0.1, Im: 0.1}, {Re: -0.2, Im: -0.4}} {
		if !InCardioid(c) {
			t.Errorf("%v: expected pre-check hit", c)
		}
		res := Evaluate(c, 1000)
		if res.Escaped {
			t.Errorf("%v: expected bounded, got %v", c, res)
		}
		if !res.PreChecked() || res.Steps != 0 {
			t.Errorf("%v: expected no iterations, got %d", c, res.Steps)
		}
	}
}

func TestEvaluateBoundedAfterIterating(t *testing.T) {
	// -1 cycles 0, -1, 0, ... and lies outside the pre-check region.
	c := Sample{Re: -1}
	if InCardioid(c) {
		t.Fatal("expected -1 to miss the pre-check")
	}
	res := Evaluate(c, 64)
	if res.Escaped {
		t.Fatalf("expected bounded, got %v", res)
	}
	if res.PreChecked() || res.Steps != 64 {
		t.Errorf("expected 64 steps, got %d", res.Steps)
	}
}

func TestEvaluateKnownEscapes(t *testing.T) {
	tests := []struct {
		c    Sample
		iter int
	}{
		{Sample{Re: 2}, 1},
		{Sample{Re: -2.5}, 0},
		{Sample{Re: 1}, 2},
		{Sample{Re: -1, Im: -0.5}, 4},
		{Sample{Re: -0.75, Im: -0.5}, 5},
		{Sample{Re: -0.75, Im: -0.25}, 12},
		{Sample{Re: -0.75, Im: 0.25}, 12},
	}

	for _, tt := range tests {
		res := Evaluate(tt.c, 50)
		if !res.Escaped || res.Iteration != tt.iter {
			t.Errorf("%v: expected escaped(%d), got %v", tt.c, tt.iter, res)
		}
	}
}

func TestEvaluateCutoff(t *testing.T) {
	// Escapes at iteration 12, so a cutoff of 12 iterations never sees it.
	c := Sample{Re: -0.75, Im: -0.25}
	if res := Evaluate(c, 12); res.Escaped {
		t.Errorf("expected bounded at cutoff 12, got %v", res)
	}
	if res := Evaluate(c, 13); !res.Escaped {
		t.Errorf("expected escape at cutoff 13, got %v", res)
	}
}

func TestEscapeResultString(t *testing.T) {
	if s := EscapedAt(7).String(); s != "escaped(7)" {
		t.Errorf("got %q", s)
	}
	if s := Bounded.String(); s != "bounded" {
		t.Errorf("got %q", s)
	}
}
