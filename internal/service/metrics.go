package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "billplz",
		Name:      "tool_calls_total",
		Help:      "Tool invocations by tool and outcome.",
	}, []string{"tool", "outcome"})

	toolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "billplz",
		Name:      "tool_duration_seconds",
		Help:      "Tool invocation latency in seconds, including the Billplz round trip.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tool"})

	journalFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "billplz",
		Name:      "journal_write_failures_total",
		Help:      "Journal entries that could not be written.",
	})
)
