// Package metrics exposes the throughput gauges published by the
// `tinyjambu bench` CLI subcommand.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry collects every gauge this package publishes. Callers push it to
// a pushgateway or scrape it directly; nothing in this module starts an
// HTTP listener on its own.
var Registry = prometheus.NewRegistry()

// SealThroughput reports encryption throughput, in bytes per second, for
// the most recently completed benchmark run.
var SealThroughput = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Name: "tinyjambu_seal_bytes_per_second",
	Help: "Measured Seal() throughput of the most recent benchmark run.",
}, []string{"variant", "unrolling"})

// OpenThroughput reports decryption throughput, in bytes per second, for
// the most recently completed benchmark run.
var OpenThroughput = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Name: "tinyjambu_open_bytes_per_second",
	Help: "Measured Open() throughput of the most recent benchmark run.",
}, []string{"variant", "unrolling"})

func init() {
	Registry.MustRegister(SealThroughput, OpenThroughput)
}
