// Package metrics exports community-detection runs as Prometheus metrics.
//
// Recorder implements community.Recorder: pass it with
// community.WithRecorder and every run and hierarchy level is counted.
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewRecorder(reg)
//	res, err := community.Detect(net, 1, 1, community.WithRecorder(rec))
//
// Exported series (prefix "mlnet_community_"):
//
//	runs_total{status}          counter
//	run_duration_seconds        histogram
//	run_levels                  histogram
//	level_moves_total           counter
//	level_nodes{level}          gauge (last run)
//	modularity                  gauge (last successful run)
//	communities                 gauge (last successful run)
package metrics
