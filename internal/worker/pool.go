// Package worker provides a worker pool that runs move searches off the
// caller's goroutine.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/errors"
	"github.com/lgbarn/negamax-chess/internal/search"
)

// WorkItem is one search job. The board belongs to the pool until the
// matching result has been received.
type WorkItem struct {
	Index   int // Caller's tag, copied into the result
	Ctx     context.Context
	Board   *chess.Board
	Options search.Options
}

// ProcessResult is the outcome of one job.
type ProcessResult struct {
	Index   int
	Board   *chess.Board
	Result  search.Result
	Err     error
	Elapsed time.Duration
}

// ProcessFunc runs one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// SearchFunc returns a ProcessFunc that runs search.Search on the item's
// board and times it.
func SearchFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		ctx := item.Ctx
		if ctx == nil {
			ctx = context.Background()
		}
		start := time.Now()
		res, err := search.Search(ctx, item.Board, item.Options)
		return ProcessResult{
			Index:   item.Index,
			Board:   item.Board,
			Result:  res,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

// Pool runs work items on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the size of the work and result buffers.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers goroutines and channels buffered
// to bufferSize. Both are raised to at least 1.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 1.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  1,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker runs items until the work channel is closed. Once the pool is
// stopped, items are answered with ErrPoolStopped instead of being run, so
// every submitted item still gets exactly one result.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			p.resultChan <- ProcessResult{Index: item.Index, Board: item.Board, Err: errors.ErrPoolStopped}
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking.
// Returns false if the work buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers answer queued items with ErrPoolStopped. A search
// already running is not interrupted; cancel its context for that.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
