package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CommitPrometheusMetrics tracks commit executor outcomes per transaction
// kind, including the synthetic delay spent in simulated mode.
type CommitPrometheusMetrics struct {
	commitTotal        *prometheus.CounterVec
	commitDurationHist *prometheus.HistogramVec
}

func newCommitPrometheusMetrics(reg prometheus.Registerer) *CommitPrometheusMetrics {
	commitTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transaction_commit_total",
			Help: "Total number of commit attempts by kind and outcome.",
		},
		[]string{"kind", "status"},
	)

	commitDurationHist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transaction_commit_duration_seconds",
			Help:    "Duration of commit execution in seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
		},
		[]string{"kind"},
	)

	reg.MustRegister(commitTotal, commitDurationHist)

	return &CommitPrometheusMetrics{
		commitTotal:        commitTotal,
		commitDurationHist: commitDurationHist,
	}
}

func (m *CommitPrometheusMetrics) Record(kind, status string, duration time.Duration) {
	m.commitTotal.WithLabelValues(kind, status).Inc()
	m.commitDurationHist.WithLabelValues(kind).Observe(duration.Seconds())
}
