package worker

import (
	"log/slog"
	"sync"

	"github.com/baharkarakas/mindbank/internal/metrics"
)

type task func()

// Pool runs background jobs on a fixed set of goroutines.
type Pool struct {
	wg     sync.WaitGroup
	mu     sync.RWMutex
	jobs   chan task
	closed bool
	log    *slog.Logger
}

func NewPool(n, queue int, log *slog.Logger) *Pool {
	if n < 1 {
		n = 1
	}
	if queue < 1 {
		queue = 16
	}
	if log == nil {
		log = slog.Default()
	}
	p := &Pool{jobs: make(chan task, queue), log: log}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Dec()
				p.run(job)
			}
		}()
	}
	return p
}

func (p *Pool) run(job task) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("worker job panicked", "panic", r)
		}
	}()
	job()
}

// Submit queues f without blocking. It reports false when the queue is full
// or the pool has been stopped.
func (p *Pool) Submit(f func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- f:
		metrics.WorkerQueueDepth.Inc()
		return true
	default:
		p.log.Warn("worker queue full, job dropped")
		return false
	}
}

// Stop drains queued jobs and waits for them to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
