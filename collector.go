package skipindex

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a list's shape and mutation counters as Prometheus
// metrics. It reads the list without locking, so it must only be registered
// where access to the list is already serialized, the same contract every
// other operation carries.
type Collector[V comparable] struct {
	list *SkipList[V]

	nodes      *prometheus.Desc
	values     *prometheus.Desc
	height     *prometheus.Desc
	inserts    *prometheus.Desc
	collisions *prometheus.Desc
	erases     *prometheus.Desc
	unlinks    *prometheus.Desc
	misses     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector[int])(nil)

// NewCollector returns a Collector for list. The namespace prefixes every
// metric name and may be empty.
func NewCollector[V comparable](list *SkipList[V], namespace string) *Collector[V] {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "skipindex", name), help, nil, nil)
	}
	return &Collector[V]{
		list:       list,
		nodes:      desc("nodes", "Number of real nodes (distinct keys) in the list."),
		values:     desc("values", "Total number of stored values across all nodes."),
		height:     desc("height", "Number of levels currently in use."),
		inserts:    desc("inserts_total", "Insert calls, including collisions."),
		collisions: desc("collisions_total", "Inserts that landed on an existing key."),
		erases:     desc("erases_total", "Successful value removals."),
		unlinks:    desc("unlinks_total", "Erases that removed a whole node."),
		misses:     desc("erase_misses_total", "Erases that found nothing to remove."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector[V]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.values
	ch <- c.height
	ch <- c.inserts
	ch <- c.collisions
	ch <- c.erases
	ch <- c.unlinks
	ch <- c.misses
}

// Collect implements prometheus.Collector.
func (c *Collector[V]) Collect(ch chan<- prometheus.Metric) {
	stats := c.list.Stats()
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(c.list.Len()))
	ch <- prometheus.MustNewConstMetric(c.values, prometheus.GaugeValue, float64(c.list.NumValues()))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(c.list.Height()))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(stats.Inserts))
	ch <- prometheus.MustNewConstMetric(c.collisions, prometheus.CounterValue, float64(stats.Collisions))
	ch <- prometheus.MustNewConstMetric(c.erases, prometheus.CounterValue, float64(stats.Erases))
	ch <- prometheus.MustNewConstMetric(c.unlinks, prometheus.CounterValue, float64(stats.Unlinks))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
}
