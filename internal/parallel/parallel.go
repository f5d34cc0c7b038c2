// Package parallel runs loops over index ranges on a bounded number of
// goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunksPerWorker is how many ranges each worker gets when no grain size
// is given.
const chunksPerWorker = 4

// For splits [0, n) into contiguous ranges of at most grain indices and
// calls fn on each, with at most workers calls running at once. workers
// <= 0 means GOMAXPROCS; grain <= 0 picks a size from n and workers. fn
// must only touch data owned by its range. All calls run to completion
// and the first error is returned.
func For(n, grain, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if grain <= 0 {
		grain = max(1, (n+workers*chunksPerWorker-1)/(workers*chunksPerWorker))
	}
	if workers == 1 || n <= grain {
		return fn(0, n)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += grain {
		hi := min(lo+grain, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}

// Ranges returns how many calls For makes for the same arguments.
func Ranges(n, grain, workers int) int {
	if n <= 0 {
		return 0
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if grain <= 0 {
		grain = max(1, (n+workers*chunksPerWorker-1)/(workers*chunksPerWorker))
	}
	if workers == 1 || n <= grain {
		return 1
	}
	return (n + grain - 1) / grain
}
