package workpool

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/workpool/metric"
)

// poolMetrics holds Prometheus metrics for pool monitoring. Created only
// when WithMetrics is supplied; the always-on atomic statistics do not
// depend on it.
type poolMetrics struct {
	submitted   prometheus.Counter
	completed   prometheus.Counter
	panics      prometheus.Counter
	queueDepth  prometheus.Gauge
	busyWorkers prometheus.Gauge
	jobDuration prometheus.Histogram
}

const metricsOwner = "worker_pool"

// newPoolMetrics creates and registers the pool's metrics with the shared
// registry. Registration failure (typically a prefix collision) is surfaced
// to the caller of New rather than silently ignored.
func newPoolMetrics(registry *metric.Registry, prefix string) (*poolMetrics, error) {
	m := &poolMetrics{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_jobs_submitted_total",
			Help: "Total jobs submitted to the pool",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_jobs_completed_total",
			Help: "Total jobs that ran to completion",
		}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_worker_panics_total",
			Help: "Total jobs that panicked and retired their worker",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "_queue_depth",
			Help: "Jobs waiting on the dispatch queue",
		}),
		busyWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "_busy_workers",
			Help: "Workers currently executing a job",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "_job_duration_seconds",
			Help:    "Time spent executing jobs",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
	}

	registrations := []struct {
		name string
		err  error
	}{
		{prefix + "_jobs_submitted_total", registry.RegisterCounter(metricsOwner, prefix+"_jobs_submitted_total", m.submitted)},
		{prefix + "_jobs_completed_total", registry.RegisterCounter(metricsOwner, prefix+"_jobs_completed_total", m.completed)},
		{prefix + "_worker_panics_total", registry.RegisterCounter(metricsOwner, prefix+"_worker_panics_total", m.panics)},
		{prefix + "_queue_depth", registry.RegisterGauge(metricsOwner, prefix+"_queue_depth", m.queueDepth)},
		{prefix + "_busy_workers", registry.RegisterGauge(metricsOwner, prefix+"_busy_workers", m.busyWorkers)},
		{prefix + "_job_duration_seconds", registry.RegisterHistogram(metricsOwner, prefix+"_job_duration_seconds", m.jobDuration)},
	}

	for _, r := range registrations {
		if r.err != nil {
			return nil, r.err
		}
	}

	return m, nil
}
