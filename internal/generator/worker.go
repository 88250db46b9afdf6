package generator

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// GetWorkerCount returns the number of workers to use.
// If configured workers is 0, auto-detects using runtime.NumCPU().
func GetWorkerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	cpus := runtime.NumCPU()
	if cpus < 1 {
		return 1
	}
	return cpus
}

// Task is one named unit of work for RunTasks
type Task struct {
	Name string
	Fn   func(ctx context.Context) error
}

// RunTasks executes tasks on at most workers goroutines. Tasks are
// started in order; after the first failure no new task is started and
// the first error is returned once running tasks have finished.
func RunTasks(ctx context.Context, workers int, tasks []Task) error {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	queue := make(chan Task)
	for i := 0; i < min(workers, len(tasks)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				if err := t.Fn(ctx); err != nil {
					fail(fmt.Errorf("%s: %w", t.Name, err))
				}
			}
		}()
	}

feed:
	for _, t := range tasks {
		select {
		case <-ctx.Done():
			break feed
		case queue <- t:
		}
	}
	close(queue)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
