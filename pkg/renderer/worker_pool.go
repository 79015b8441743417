package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs render tasks on a bounded number of goroutines.
// The first task to fail cancels the pool's context.
type WorkerPool struct {
	group      *errgroup.Group
	ctx        context.Context
	numWorkers int
}

// NewWorkerPool creates a pool with numWorkers render slots plus one
// for the collector. numWorkers <= 0 means one per CPU.
func NewWorkerPool(ctx context.Context, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(numWorkers + 1)

	return &WorkerPool{
		group:      group,
		ctx:        ctx,
		numWorkers: numWorkers,
	}
}

// Context is cancelled when any task fails or the parent is cancelled
func (wp *WorkerPool) Context() context.Context {
	return wp.ctx
}

// Go runs task on the pool, blocking while every slot is busy
func (wp *WorkerPool) Go(task func(ctx context.Context) error) {
	wp.group.Go(func() error {
		return task(wp.ctx)
	})
}

// Wait blocks until all tasks finish and returns the first error
func (wp *WorkerPool) Wait() error {
	return wp.group.Wait()
}

// NumWorkers returns the number of render slots in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
