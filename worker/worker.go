package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs submitted jobs on a fixed set of goroutines. The example server
// ticks entities on it against one frozen snapshot per round and commits the
// results afterwards.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
}

// NewPool starts a pool with the given number of workers; size <= 0 uses one
// worker per CPU.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), size)}
	for range size {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer p.wg.Done()
	defer sentry.Recover()

	f()
}

// Submit queues a job. To be used for work that may be CPU intensive.
func (p *Pool) Submit(f func()) {
	p.wg.Add(1)
	p.queue <- f
}

// Wait blocks until every submitted job has completed.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Close stops the workers once queued jobs have drained.
func (p *Pool) Close() {
	close(p.queue)
}
