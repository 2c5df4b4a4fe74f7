package metrics

import (
	"time"

	"github.com/onflow/sha2/module"
)

type NoopCollector struct{}

var _ module.HashingMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) BytesHashed(algorithm string, size int)                                {}
func (nc *NoopCollector) DigestComputed(algorithm string)                                       {}
func (nc *NoopCollector) HashingFailed(algorithm string, reason string)                         {}
func (nc *NoopCollector) BatchProcessed(algorithm string, messages int, duration time.Duration) {}
