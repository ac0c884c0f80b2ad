package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors are the Prometheus series the aggregator keeps current.
type Collectors struct {
	interpretations *prometheus.CounterVec
	responseTime    prometheus.Histogram
	confidence      prometheus.Histogram
	feedback        *prometheus.CounterVec
}

// NewCollectors creates unregistered collectors.
func NewCollectors() *Collectors {
	return &Collectors{
		interpretations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "komut_interpretations_total",
				Help: "Total number of interpreted commands",
			},
			[]string{"intent", "outcome"},
		),
		responseTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "komut_response_seconds",
				Help:    "Time taken to interpret and dispatch a command",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		confidence: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "komut_confidence",
				Help:    "Composed confidence of interpreted commands",
				Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
			},
		),
		feedback: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "komut_feedback_total",
				Help: "User feedback on interpretations",
			},
			[]string{"kind"},
		),
	}
}

// Register adds every collector to reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.interpretations, c.responseTime, c.confidence, c.feedback} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
