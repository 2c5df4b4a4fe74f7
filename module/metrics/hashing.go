package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/sha2/module"
)

type HashingCollector struct {
	bytesHashed     *prometheus.CounterVec
	digestsComputed *prometheus.CounterVec
	failures        *prometheus.CounterVec
	batchSize       *prometheus.HistogramVec
	batchDuration   *prometheus.HistogramVec
}

var _ module.HashingMetrics = (*HashingCollector)(nil)

// NewHashingCollector creates the hashing collectors and registers them with registerer.
func NewHashingCollector(registerer prometheus.Registerer) *HashingCollector {
	hc := &HashingCollector{
		bytesHashed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceCrypto,
			Subsystem: subsystemHasher,
			Name:      "bytes_total",
			Help:      "the number of bytes absorbed by hashers",
		}, []string{LabelAlgorithm}),

		digestsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceCrypto,
			Subsystem: subsystemHasher,
			Name:      "digests_total",
			Help:      "the number of digests computed by hashers",
		}, []string{LabelAlgorithm}),

		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceCrypto,
			Subsystem: subsystemHasher,
			Name:      "failures_total",
			Help:      "the number of operations rejected by hashers, by resulting status",
		}, []string{LabelAlgorithm, LabelReason}),

		batchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespaceCrypto,
			Subsystem: subsystemBatch,
			Name:      "messages",
			Help:      "the number of messages per hashed batch",
			Buckets:   []float64{1, 10, 100, 1000, 10000},
		}, []string{LabelAlgorithm}),

		batchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespaceCrypto,
			Subsystem: subsystemBatch,
			Name:      "duration_seconds",
			Help:      "the time spent hashing a batch",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{LabelAlgorithm}),
	}

	registerer.MustRegister(
		hc.bytesHashed,
		hc.digestsComputed,
		hc.failures,
		hc.batchSize,
		hc.batchDuration,
	)

	return hc
}

func (hc *HashingCollector) BytesHashed(algorithm string, size int) {
	hc.bytesHashed.WithLabelValues(algorithm).Add(float64(size))
}

func (hc *HashingCollector) DigestComputed(algorithm string) {
	hc.digestsComputed.WithLabelValues(algorithm).Inc()
}

func (hc *HashingCollector) HashingFailed(algorithm string, reason string) {
	hc.failures.WithLabelValues(algorithm, reason).Inc()
}

func (hc *HashingCollector) BatchProcessed(algorithm string, messages int, duration time.Duration) {
	hc.batchSize.WithLabelValues(algorithm).Observe(float64(messages))
	hc.batchDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}
