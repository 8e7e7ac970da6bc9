// Package parallel splits index ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// For calls fn over [0, n) in contiguous chunks, one goroutine per chunk.
// Ranges shorter than minChunk run on the calling goroutine. fn must only
// touch state owned by its own indices.
func For(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if minChunk < 1 {
		minChunk = 1
	}

	workers := runtime.GOMAXPROCS(0)
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Map evaluates fn for every index in [0, n) and collects the results.
func Map(n, minChunk int, fn func(i int) float64) []float64 {
	out := make([]float64, max(n, 0))
	For(n, minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = fn(i)
		}
	})
	return out
}
