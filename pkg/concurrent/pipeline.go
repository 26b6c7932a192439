package concurrent

import (
	"sync"
	"sync/atomic"
)

// ErrorMode controls how Apply reacts when a stage fails.
type ErrorMode int

const (
	// StopAllOnError abandons every element still pending after the first
	// failure.
	StopAllOnError ErrorMode = iota
	// SkipElementOnError drops only the failing element; others continue.
	SkipElementOnError
	// IgnoreErrors runs every stage on every element regardless.
	IgnoreErrors
)

// Apply pushes each element through the stages in order, processing elements
// concurrently with at most workers goroutines. The returned slice is
// indexed like items and holds the first error each element hit; nil means
// every stage ran clean. Fewer than one worker is promoted to one.
func Apply[T any](items []T, workers int, mode ErrorMode, stages ...func(T) error) []error {
	if workers < 1 {
		workers = 1
	}
	errs := make([]error, len(items))
	var wg sync.WaitGroup
	var stopped atomic.Bool
	sem := make(chan struct{}, workers)

	for idx, val := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v T) {
			defer wg.Done()
			defer func() { <-sem }()

			for _, stage := range stages {
				if mode == StopAllOnError && stopped.Load() {
					return
				}
				err := stage(v)
				if err == nil {
					continue
				}
				if errs[i] == nil {
					errs[i] = err
				}
				switch mode {
				case StopAllOnError:
					stopped.Store(true)
					return
				case SkipElementOnError:
					return
				}
			}
		}(idx, val)
	}
	wg.Wait()
	return errs
}
