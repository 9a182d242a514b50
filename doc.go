// Package workpool provides a fixed-size worker pool for executing an
// unbounded stream of fire-and-forget jobs across a bounded set of
// long-lived goroutines.
//
// # Overview
//
// A Pool owns N workers, fixed at construction, all competing for jobs on a
// single shared FIFO dispatch queue. Submission is decoupled from execution:
// Submit enqueues a closure and returns immediately, without blocking on
// queue capacity and without spawning a goroutine per job.
//
//	pool, err := workpool.New(4)
//	if err != nil {
//	    // requested size was not positive
//	}
//	pool.Submit(func() {
//	    // runs on exactly one worker, exactly once
//	})
//	pool.Close() // blocks until every queued and in-flight job has finished
//
// # Core Concepts
//
// Dispatch:
//
// Jobs are dequeued in submission order. One worker at a time holds the
// queue's internal lock while dequeuing, but the lock is never held during
// job execution, so jobs run fully in parallel across workers. Completion
// order is unspecified.
//
// Shutdown:
//
// Close permanently detaches the submission side of the queue, then joins
// workers in ascending ordinal order. It returns only after every job that
// was submitted before Close has run to completion. Submitting to a closed
// pool is a programming error and panics.
//
// Dual-Tracking Observability:
//
// Following the framework pattern:
//   - Statistics: ALWAYS tracked using atomic operations (zero-allocation)
//   - Metrics: OPTIONAL Prometheus metrics via WithMetrics()
//
// # Known Limitation
//
// A job that panics retires its worker permanently. The panic is recovered,
// logged, and counted in Stats().Panicked, and the remaining workers keep
// serving the queue, but the pool's effective capacity shrinks by one and
// the worker is not respawned. Callers that cannot tolerate the capacity
// leak must recover inside the job itself.
package workpool
