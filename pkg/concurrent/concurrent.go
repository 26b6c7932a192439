// Package concurrent fans work out across batches of engine objects. Every
// function takes a plain slice and returns only after all spawned work is
// done. Elements must be distinct host objects; the single-writer discipline
// per object stays with the caller.
package concurrent

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every element in its own goroutine and waits for
// all of them. The first error encountered is returned; remaining elements
// still run to completion.
func ForEach[T any](items []T, action func(T) error) error {
	var g errgroup.Group
	for _, item := range items {
		g.Go(func() error {
			return action(item)
		})
	}
	return g.Wait()
}

// ForEachLimit is ForEach with at most limit goroutines in flight. A limit
// below one means unbounded.
func ForEachLimit[T any](items []T, limit int, action func(T) error) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, item := range items {
		g.Go(func() error {
			return action(item)
		})
	}
	return g.Wait()
}

// Map applies fn to every element with at most workers goroutines and
// returns the results in input order. Fewer than one worker is promoted to
// one.
func Map[T any, R any](items []T, workers int, fn func(T) R) []R {
	if workers < 1 {
		workers = 1
	}
	out := make([]R, len(items))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, val := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v T) {
			defer wg.Done()
			out[i] = fn(v)
			<-sem
		}(idx, val)
	}
	wg.Wait()
	return out
}
