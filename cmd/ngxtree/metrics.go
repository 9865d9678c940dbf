package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"
)

var (
	parseFilesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ngxtree",
			Subsystem: "parse",
			Name:      "files_total",
		},
		[]string{"status"},
	)
	parseErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ngxtree",
			Subsystem: "parse",
			Name:      "errors_total",
		},
		[]string{"kind"},
	)
	parseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ngxtree",
			Subsystem: "parse",
			Name:      "duration_seconds",
		},
	)

	// sessionFileCount is a process-wide running total of files parsed in
	// this invocation. It is written by the parse subcommand's main
	// goroutine and read both there (for the closing CLI log line) and by
	// the promhttp handler goroutine serveMetrics starts, so it needs to be
	// race-free rather than a plain int64.
	sessionFileCount atomic.Int64

	sessionFilesGauge = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "ngxtree",
			Subsystem: "parse",
			Name:      "session_files_parsed",
		},
		func() float64 { return float64(sessionFileCount.Load()) },
	)
)

func init() {
	prometheus.MustRegister(parseFilesTotal, parseErrorsTotal, parseDuration, sessionFilesGauge)
}

func serveMetrics(addr string) {
	go http.ListenAndServe(addr, promhttp.Handler())
}
