// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synd

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	HandlerLabel = "handler"
	CodeLabel    = "code"
	OutcomeLabel = "outcome"
	Succeeded    = "succeeded"
	Failed       = "failed"
)

type metrics struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	equations *prometheus.CounterVec
	gates     prometheus.Histogram
	busy      prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "excite_requests_total",
				Help: "Number of http requests by handler and status code",
			},
			[]string{HandlerLabel, CodeLabel},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "excite_request_duration_seconds",
				Help:    "Duration of http requests by handler",
				Buckets: prometheus.DefBuckets,
			},
			[]string{HandlerLabel},
		),
		equations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "excite_equations_total",
				Help: "Number of synthesized equations by outcome",
			},
			[]string{OutcomeLabel},
		),
		gates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "excite_gates",
				Help:    "Number of gates per synthesized netlist",
				Buckets: prometheus.LinearBuckets(1, 4, 10),
			},
		),
		busy: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "excite_busy_handlers",
				Help: "Number of requests being synthesized",
			},
		),
	}
	reg.MustRegister(m.requests, m.durations, m.equations, m.gates, m.busy)
	return m
}
