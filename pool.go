package workpool

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Job is a single unit of submitted work. It runs exactly once, on exactly
// one worker, and must be safe to hand to another goroutine. Jobs carry no
// identity, no priority, and no deadline.
type Job func()

// Pool is a fixed-size worker pool. The worker count is set at construction
// and never changes; all workers compete for jobs on one shared unbounded
// FIFO dispatch queue.
//
// A Pool moves through three states: active (submissions accepted), closing
// (Close called, workers draining), terminated (all workers joined). The
// transitions are one-directional and occur at most once each.
type Pool struct {
	workers []*worker
	queue   *dispatchQueue
	logger  *slog.Logger
	metrics *poolMetrics

	closeOnce sync.Once

	// Statistics (atomic)
	submitted int64
	completed int64
	panicked  int64
	retired   int64
}

// New creates a pool of size workers, spawning all of them synchronously
// before returning. size must be at least 1; otherwise a *CreationError is
// returned and no goroutines are started.
func New(size int, opts ...Option) (*Pool, error) {
	if size < 1 {
		return nil, newCreationError(size)
	}

	o := applyOptions(opts...)

	p := &Pool{
		queue:  newDispatchQueue(),
		logger: o.logger,
	}

	if o.metricsReg != nil && o.metricsPrefix != "" {
		m, err := newPoolMetrics(o.metricsReg, o.metricsPrefix)
		if err != nil {
			return nil, err
		}
		p.metrics = m
	}

	p.workers = make([]*worker, 0, size)
	for id := 0; id < size; id++ {
		p.workers = append(p.workers, p.startWorker(id))
	}

	return p, nil
}

// Submit enqueues job on the dispatch queue and returns immediately. The
// queue is unbounded, so Submit never blocks waiting for capacity, and
// there is no completion notification.
//
// Submitting a nil job, or submitting after Close, is a programming error
// and panics.
func (p *Pool) Submit(job Job) {
	if job == nil {
		panic(ErrNilJob)
	}

	if !p.queue.push(job) {
		panic(ErrPoolClosed)
	}

	atomic.AddInt64(&p.submitted, 1)
	if p.metrics != nil {
		p.metrics.submitted.Inc()
		p.metrics.queueDepth.Set(float64(p.queue.depth()))
	}
}

// Close shuts the pool down: it permanently detaches the submission side of
// the dispatch queue, then joins the workers in ascending ordinal order.
// Close blocks until every job submitted before it was called has finished
// executing.
//
// Close is idempotent; concurrent and repeated calls all return once the
// pool has terminated. Skipping Close leaks the worker goroutines.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.queue.close()

		for _, w := range p.workers {
			p.logger.Debug("shutting down worker", "worker", w.id)
			w.join()
		}
	})
}

// Stats is a point-in-time snapshot of pool statistics.
type Stats struct {
	Workers     int   `json:"workers"`
	LiveWorkers int   `json:"live_workers"`
	QueueDepth  int   `json:"queue_depth"`
	Submitted   int64 `json:"submitted"`
	Completed   int64 `json:"completed"`
	Panicked    int64 `json:"panicked"`
}

// Stats returns current pool statistics. LiveWorkers is Workers minus the
// workers retired by panicking jobs.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:     len(p.workers),
		LiveWorkers: len(p.workers) - int(atomic.LoadInt64(&p.retired)),
		QueueDepth:  p.queue.depth(),
		Submitted:   atomic.LoadInt64(&p.submitted),
		Completed:   atomic.LoadInt64(&p.completed),
		Panicked:    atomic.LoadInt64(&p.panicked),
	}
}
