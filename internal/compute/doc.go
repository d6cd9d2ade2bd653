// Package compute provides the execution backends that spread per-pixel work
// across goroutines.
//
//   - Serial: one goroutine, ranges visited in ascending order
//   - CPU: [0, n) split into disjoint contiguous chunks, one per worker
//
// Work items handed to a backend must be independent; backends never call fn
// twice for the same index and never synchronise beyond waiting for all
// chunks to finish.
//
//	backend := compute.AutoSelectBackend(width)
//	backend.For(width, func(start, end int) { ... })
package compute
