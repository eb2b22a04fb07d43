// control/collector.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus bridge for MetricsRegistry.

package control

import (
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
)

// Collector exports every numeric MetricsRegistry entry as a gauge named
// <namespace>_<key>, with non-alphanumeric key characters replaced by '_'.
// Non-numeric entries are skipped. When several keys sanitize to the same
// name, only the first key in sorted order is exported.
//
// The key set is dynamic, so Collector is an unchecked collector: Describe
// sends no descriptors.
type Collector struct {
	namespace string
	registry  *MetricsRegistry
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector wraps registry for Prometheus export.
func NewCollector(namespace string, registry *MetricsRegistry) *Collector {
	return &Collector{namespace: namespace, registry: registry}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snapshot := c.registry.GetSnapshot()
	keys := lo.Keys(snapshot)
	slices.Sort(keys)
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		v, ok := toFloat(snapshot[key])
		if !ok {
			continue
		}
		name := MetricName(c.namespace, key)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		desc := prometheus.NewDesc(name, "hioload-ring metric "+key, nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v)
	}
}

// MetricName builds the exported gauge name for a registry key.
func MetricName(namespace, key string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	if namespace == "" {
		return sanitized
	}
	return namespace + "_" + sanitized
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
