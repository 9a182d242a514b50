// Package metric provides Prometheus-based metrics registration and an HTTP
// exposition server for workpool observability.
//
// The Registry wraps a dedicated prometheus.Registry and keys every metric
// by an owner string plus the metric name, so independent pools sharing one
// registry detect prefix collisions at registration time instead of at
// scrape time. Go runtime and process collectors are registered
// automatically.
//
// Usage:
//
//	registry := metric.NewRegistry()
//	pool, err := workpool.New(4, workpool.WithMetrics(registry, "ingest"))
//	...
//	server := metric.NewServer(9090, "/metrics", registry)
//	go server.Start()
//	defer server.Stop()
package metric
