// Package metrics records build counters and durations for a generation run.
//
// Components receive a Recorder through their options; NoopRecorder is the
// default so callers never check for nil. PrometheusRecorder registers its
// collectors on a caller supplied registry, which the CLI can export to a
// node_exporter style textfile after the run.
package metrics
