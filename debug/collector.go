package debug

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/weatherpets/status"
)

const namespace = "weatherpets"

var keyReplacer = strings.NewReplacer(".", "_", "-", "_")

// registryCollector exports a status.Registry as constant metrics on every scrape.
// Keys are registered lazily by components, so the collector is unchecked
type registryCollector struct {
	reg *status.Registry
}

func newRegistryCollector(reg *status.Registry) *registryCollector {
	return &registryCollector{reg: reg}
}

// Describe sends nothing, marking the collector as unchecked
func (c *registryCollector) Describe(chan<- *prometheus.Desc) {}

// Collect reads a point-in-time snapshot of the registry
func (c *registryCollector) Collect(ch chan<- prometheus.Metric) {
	for _, v := range c.reg.Snapshot() {
		name, typ := metricName(v.Key, v.Kind)
		desc := prometheus.NewDesc(name, "Status metric "+v.Key+".", nil, nil)
		m, err := prometheus.NewConstMetric(desc, typ, v.Value)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(desc, err)
			continue
		}
		ch <- m
	}
}

// metricName maps a dotted status key to a prometheus name and value type
func metricName(key string, kind status.Kind) (string, prometheus.ValueType) {
	name := prometheus.BuildFQName(namespace, "", keyReplacer.Replace(key))
	if kind == status.KindCounter {
		return name + "_total", prometheus.CounterValue
	}
	return name, prometheus.GaugeValue
}
