package check

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/exploopio/check-mem/pkg/perfdata"
)

// WriteTextfile exports this invocation's quantities as Prometheus gauges
// in the node_exporter textfile-collector format. The file holds current
// values only; no history is kept.
func (r *Result) WriteTextfile(path string) error {
	reg := prometheus.NewRegistry()

	bytesGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "check_mem",
		Name:      "bytes",
		Help:      "Memory quantity in bytes.",
	}, []string{"metric"})
	ratioGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "check_mem",
		Name:      "ratio",
		Help:      "Memory quantity as a fraction of total RAM.",
	}, []string{"metric"})
	statusGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "check_mem",
		Name:      "status",
		Help:      "Check status (0 OK, 1 WARNING, 2 CRITICAL).",
	})
	reg.MustRegister(bytesGauge, ratioGauge, statusGauge)

	for _, q := range r.quantities() {
		native := uint64(q.value.Raw(perfdata.Current))
		bytesGauge.WithLabelValues(q.name).Set(float64(native * uint64(r.bytesPerNativeUnit)))
		ratioGauge.WithLabelValues(q.name).Set(q.value.Percent() / 100)
	}
	statusGauge.Set(float64(r.Status.ExitCode()))

	return prometheus.WriteToTextfile(path, reg)
}
