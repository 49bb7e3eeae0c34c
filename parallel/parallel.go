// Package parallel fans independent script blocks out to a worker pool
// and collects their results as they complete. Each submitted block gets
// a Future; convenience wrappers join everything before returning the
// result stream's close.
package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultWorkers bounds concurrent block execution when the caller does
// not size the pool.
const DefaultWorkers = 5

// Block is one executable script fragment.
type Block func(ctx context.Context) (any, error)

// HostBlock is a script fragment parameterized by a target host.
type HostBlock func(ctx context.Context, host string) (any, error)

// Result is the outcome of one block. A failing block carries its error
// here; it never affects sibling blocks.
type Result struct {
	ID      uuid.UUID
	Index   int
	Host    string
	Value   any
	Err     error
	Elapsed time.Duration
}

// Future resolves to the Result of one submitted block.
type Future struct {
	id   uuid.UUID
	done chan struct{}
	res  Result
}

// ID identifies the submitted block.
func (f *Future) ID() uuid.UUID { return f.id }

// Done is closed when the result is available.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the result is available or ctx expires.
func (f *Future) Wait(ctx context.Context) Result {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return Result{ID: f.id, Err: ctx.Err()}
	}
}

type job struct {
	ctx   context.Context
	block Block
	fut   *Future
}

// Pool runs submitted blocks on a fixed number of worker goroutines.
type Pool struct {
	jobs chan job
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewPool starts a pool with the given number of workers; values below
// one fall back to DefaultWorkers.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}

	p := &Pool{jobs: make(chan job)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Submit queues a block and returns its Future. Submit must not be
// called after Close.
func (p *Pool) Submit(ctx context.Context, block Block) *Future {
	fut := &Future{id: uuid.New(), done: make(chan struct{})}
	p.jobs <- job{ctx: ctx, block: block, fut: fut}
	return fut
}

// Close stops accepting work and waits for running blocks to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() { close(p.jobs) })
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j.fut.res = run(j.ctx, j.fut.id, j.block)
		close(j.fut.done)
	}
}

// run executes one block, converting panics into errors so a faulty
// block cannot take down its siblings.
func run(ctx context.Context, id uuid.UUID, block Block) (res Result) {
	res = Result{ID: id}
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("script block panic: %v", r)
		}
		res.Elapsed = time.Since(start)
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	res.Value, res.Err = block(ctx)
	return res
}

// Invoke runs every block concurrently and emits results on the
// returned channel as blocks complete, in completion order. The channel
// closes once all blocks have finished. Result.Index identifies the
// originating block.
func Invoke(ctx context.Context, blocks ...Block) <-chan Result {
	return invoke(ctx, len(blocks), blocks, nil)
}

// InvokeOnHosts runs block once per host concurrently. Result.Host
// identifies the target.
func InvokeOnHosts(ctx context.Context, hosts []string, block HostBlock) <-chan Result {
	wrapped := make([]Block, len(hosts))
	for i, host := range hosts {
		host := host
		wrapped[i] = func(ctx context.Context) (any, error) {
			return block(ctx, host)
		}
	}
	return invoke(ctx, len(hosts), wrapped, hosts)
}

func invoke(ctx context.Context, n int, blocks []Block, hosts []string) <-chan Result {
	out := make(chan Result, n)
	if n == 0 {
		close(out)
		return out
	}

	pool := NewPool(n)

	var wg sync.WaitGroup
	for i, b := range blocks {
		fut := pool.Submit(ctx, b)

		wg.Add(1)
		go func(i int, fut *Future) {
			defer wg.Done()
			res := fut.Wait(ctx)
			res.Index = i
			if hosts != nil {
				res.Host = hosts[i]
			}
			out <- res
		}(i, fut)
	}

	go func() {
		wg.Wait()
		pool.Close()
		close(out)
	}()

	return out
}
