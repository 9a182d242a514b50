package workpool

import (
	"sync/atomic"
	"time"
)

// worker owns one goroutine that competes for jobs on the pool's shared
// dispatch queue. The ordinal id is assigned at construction and is stable
// for the worker's lifetime; done is the join handle, received from exactly
// once during Close.
type worker struct {
	id   int
	done chan struct{}
}

// startWorker spawns worker id immediately; its goroutine loops until the
// dispatch queue reports permanent closure or a job panics.
func (p *Pool) startWorker(id int) *worker {
	w := &worker{
		id:   id,
		done: make(chan struct{}),
	}
	go p.runWorker(w)
	return w
}

// join blocks until the worker's goroutine has fully terminated.
func (w *worker) join() {
	<-w.done
}

// runWorker is the receive-execute loop. The queue's lock is held only for
// the dequeue itself, never while a job runs, so the other workers keep
// dequeuing concurrently.
func (p *Pool) runWorker(w *worker) {
	defer close(w.done)

	for {
		job, ok := p.queue.pop()
		if !ok {
			p.logger.Debug("worker disconnected, shutting down", "worker", w.id)
			return
		}

		p.logger.Debug("worker received job", "worker", w.id)
		if !p.runJob(w, job) {
			// The job panicked. The worker is retired rather than
			// respawned; the pool keeps serving with one goroutine
			// fewer. See the package documentation.
			return
		}
	}
}

// runJob executes one job with a panic guard. Returns false if the job
// panicked and the worker must retire.
func (p *Pool) runJob(w *worker, job Job) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(&p.panicked, 1)
			atomic.AddInt64(&p.retired, 1)
			if p.metrics != nil {
				p.metrics.panics.Inc()
				p.metrics.busyWorkers.Dec()
			}
			p.logger.Error("job panicked, retiring worker",
				"worker", w.id, "panic", r)
			ok = false
		}
	}()

	if p.metrics != nil {
		p.metrics.busyWorkers.Inc()
	}

	start := time.Now()
	job()

	atomic.AddInt64(&p.completed, 1)
	if p.metrics != nil {
		p.metrics.busyWorkers.Dec()
		p.metrics.completed.Inc()
		p.metrics.jobDuration.Observe(time.Since(start).Seconds())
		p.metrics.queueDepth.Set(float64(p.queue.depth()))
	}
	return true
}
