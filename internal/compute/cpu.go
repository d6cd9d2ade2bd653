package compute

import (
	"fmt"
	"runtime"
	"sync"
)

type CPUBackend struct {
	workers int
}

// NewCPUBackend creates a backend with the given number of workers; zero or
// less means runtime.NumCPU().
func NewCPUBackend(workers int) *CPUBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUBackend{workers: workers}
}

func (c *CPUBackend) Name() string { return fmt.Sprintf("cpu(%d)", c.workers) }
func (c *CPUBackend) Workers() int { return c.workers }

func (c *CPUBackend) For(n int, fn func(start, end int)) {
	ParallelFor(n, c.workers, 1, fn)
}

// ParallelFor executes fn in parallel over [0, n), giving each of at most
// workers goroutines one contiguous chunk of at least minChunk indices.
func ParallelFor(n, workers, minChunk int, fn func(start, end int)) {
	chunks := Chunks(n, workers, minChunk)
	if len(chunks) == 1 {
		fn(chunks[0][0], chunks[0][1])
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(c[0], c[1])
	}

	wg.Wait()
}

// Chunks returns the ranges ParallelFor would hand out, in order.
func Chunks(n, workers, minChunk int) [][2]int {
	var out [][2]int
	if n <= 0 {
		return out
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		return [][2]int{{0, n}}
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (n + workers - 1) / workers
	for start := 0; start < n; start += chunkSize {
		out = append(out, [2]int{start, min(start+chunkSize, n)})
	}
	return out
}
