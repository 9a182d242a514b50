package workpool

import "sync"

// dispatchQueue is the unbounded FIFO queue connecting Submit to the
// workers. Push never blocks; pop blocks until a job is available or the
// queue is closed and drained. Exactly one caller holds the lock per
// dequeue, and the lock is released before the job runs.
type dispatchQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	jobs     []Job
	head     int
	closed   bool
}

func newDispatchQueue() *dispatchQueue {
	q := &dispatchQueue{}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// push enqueues a job. Returns false if the queue has been closed.
func (q *dispatchQueue) push(job Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.jobs = append(q.jobs, job)
	q.notEmpty.Signal()
	return true
}

// pop dequeues the next job, blocking while the queue is open and empty.
// Returns false only after close has been called and every pending job has
// been handed out.
func (q *dispatchQueue) pop() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.jobs) && !q.closed {
		q.notEmpty.Wait()
	}

	if q.head == len(q.jobs) {
		// Closed and drained
		return nil, false
	}

	job := q.jobs[q.head]
	q.jobs[q.head] = nil
	q.head++

	// Reclaim the consumed prefix once it dominates the backing slice
	if q.head > len(q.jobs)/2 && q.head > 32 {
		q.jobs = append(q.jobs[:0], q.jobs[q.head:]...)
		q.head = 0
	}

	return job, true
}

// close permanently rejects further pushes and wakes every blocked pop.
// Pending jobs remain dequeueable until drained.
func (q *dispatchQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
}

// depth returns the number of jobs waiting to be dequeued.
func (q *dispatchQueue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs) - q.head
}
