package advisor

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is folded into the answer of jobs submitted after Close.
var ErrPoolClosed = errors.New("advisor pool is closed")

// Future holds the answer of a submitted query.
type Future struct {
	done   chan struct{}
	answer string
	failed bool
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(answer string, failed bool) {
	f.answer = answer
	f.failed = failed
	close(f.done)
}

// Wait blocks until the answer is ready.
func (f *Future) Wait() string {
	<-f.done
	return f.answer
}

// Failed reports whether the answer came from a failed call. It blocks
// like Wait.
func (f *Future) Failed() bool {
	<-f.done
	return f.failed
}

// Done is closed once the answer is ready.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

type job struct {
	ctx    context.Context
	query  string
	future *Future
}

// Pool runs Suggest calls on a fixed number of worker goroutines.
type Pool struct {
	agent *Agent
	jobs  chan job
	quit  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

func NewPool(agent *Agent, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		agent: agent,
		jobs:  make(chan job),
		quit:  make(chan struct{}),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case j := <-p.jobs:
			j.future.resolve(p.agent.suggest(j.ctx, j.query))
		}
	}
}

// Submit hands the query to a worker. The caller decides whether to Wait.
func (p *Pool) Submit(ctx context.Context, query string) *Future {
	f := newFuture()

	select {
	case <-p.quit:
		f.resolve(ErrorMarker+ErrPoolClosed.Error(), true)
		return f
	default:
	}

	select {
	case p.jobs <- job{ctx: ctx, query: query, future: f}:
	case <-p.quit:
		f.resolve(ErrorMarker+ErrPoolClosed.Error(), true)
	}
	return f
}

// Close stops accepting work and waits for in-flight jobs until ctx ends.
// Calls have no timeout of their own, so a stuck call is abandoned rather
// than waited on forever.
func (p *Pool) Close(ctx context.Context) error {
	p.once.Do(func() { close(p.quit) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
