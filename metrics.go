package cset

import "github.com/prometheus/client_golang/prometheus"

var CommitCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cset",
	Subsystem: "engine",
	Name:      "commits",
}, []string{"schema"})

var ApplyCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cset",
	Subsystem: "engine",
	Name:      "applies",
}, []string{"schema"})

var ChangeCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cset",
	Subsystem: "engine",
	Name:      "changes",
}, []string{"schema"})

// Collectors returns the engine's collectors for registration by the host.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{CommitCount, ApplyCount, ChangeCount}
}
