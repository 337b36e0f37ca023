package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tupyy/rrpool/pkg/threadpool"
)

const namespace = "rrpool"

// StatsSource is anything able to report pool counters.
type StatsSource interface {
	Stats() threadpool.Stats
}

// PoolCollector exports a pool snapshot on every scrape.
type PoolCollector struct {
	source             StatsSource
	submitted          *prometheus.Desc
	idleDispatches     *prometheus.Desc
	fallbackDispatches *prometheus.Desc
	executed           *prometheus.Desc
	panicked           *prometheus.Desc
	workers            *prometheus.Desc
	busyWorkers        *prometheus.Desc
	workerPending      *prometheus.Desc
	workerExecuted     *prometheus.Desc
}

func NewPoolCollector(source StatsSource) *PoolCollector {
	poolLabels := []string{"pool"}
	workerLabels := []string{"pool", "worker"}

	return &PoolCollector{
		source:             source,
		submitted:          prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "submitted_total"), "Tasks accepted by the pool.", poolLabels, nil),
		idleDispatches:     prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "idle_dispatches_total"), "Tasks sent to a worker that looked idle.", poolLabels, nil),
		fallbackDispatches: prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "fallback_dispatches_total"), "Tasks sent by round robin because every worker looked busy.", poolLabels, nil),
		executed:           prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "executed_total"), "Tasks run to completion, panics included.", poolLabels, nil),
		panicked:           prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "panicked_total"), "Tasks that panicked or exited their goroutine.", poolLabels, nil),
		workers:            prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "workers"), "Number of workers.", poolLabels, nil),
		busyWorkers:        prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", "busy_workers"), "Workers currently running a task.", poolLabels, nil),
		workerPending:      prometheus.NewDesc(prometheus.BuildFQName(namespace, "worker", "pending_tasks"), "Tasks queued on or running on a worker.", workerLabels, nil),
		workerExecuted:     prometheus.NewDesc(prometheus.BuildFQName(namespace, "worker", "executed_total"), "Tasks run by a worker.", workerLabels, nil),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.idleDispatches
	ch <- c.fallbackDispatches
	ch <- c.executed
	ch <- c.panicked
	ch <- c.workers
	ch <- c.busyWorkers
	ch <- c.workerPending
	ch <- c.workerExecuted
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted), s.ID)
	ch <- prometheus.MustNewConstMetric(c.idleDispatches, prometheus.CounterValue, float64(s.IdleDispatches), s.ID)
	ch <- prometheus.MustNewConstMetric(c.fallbackDispatches, prometheus.CounterValue, float64(s.FallbackDispatches), s.ID)
	ch <- prometheus.MustNewConstMetric(c.executed, prometheus.CounterValue, float64(s.Executed), s.ID)
	ch <- prometheus.MustNewConstMetric(c.panicked, prometheus.CounterValue, float64(s.Panicked), s.ID)
	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(len(s.Workers)), s.ID)
	ch <- prometheus.MustNewConstMetric(c.busyWorkers, prometheus.GaugeValue, float64(s.Busy()), s.ID)

	for _, w := range s.Workers {
		idx := strconv.Itoa(w.Index)
		ch <- prometheus.MustNewConstMetric(c.workerPending, prometheus.GaugeValue, float64(w.Pending()), s.ID, idx)
		ch <- prometheus.MustNewConstMetric(c.workerExecuted, prometheus.CounterValue, float64(w.Executed), s.ID, idx)
	}
}

// NewRegistry returns a registry holding the pool collector and the Go
// runtime and process collectors.
func NewRegistry(source StatsSource) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{
		NewPoolCollector(source),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
