package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/topiary-ui/topiary/pkg/dom"
)

// metrics holds the Prometheus instruments for one Instrumenter.
type metrics struct {
	rendersTotal   prometheus.Counter
	renderDuration prometheus.Histogram
	mutationsTotal *prometheus.CounterVec
	liveNodes      prometheus.Gauge
}

func newMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		mutationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mutations_total",
			Help:        "Total number of live document mutations by op",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		liveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_nodes",
			Help:        "Number of nodes in the live document after the last render",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// record updates the metrics for one completed render pass.
func (m *metrics) record(seconds float64, ops map[dom.Op]int, liveNodes int) {
	m.rendersTotal.Inc()
	m.renderDuration.Observe(seconds)
	for op, count := range ops {
		m.mutationsTotal.WithLabelValues(op.String()).Add(float64(count))
	}
	m.liveNodes.Set(float64(liveNodes))
}
