package module

import (
	"time"
)

// HashingMetrics encapsulates the metrics collectors of the hashing layer.
type HashingMetrics interface {
	// BytesHashed tracks the number of bytes absorbed by hashers of the given algorithm.
	BytesHashed(algorithm string, size int)

	// DigestComputed tracks the number of digests produced by hashers of the given algorithm.
	DigestComputed(algorithm string)

	// HashingFailed tracks the operations a hasher rejected, labelled with the
	// resulting status of the hash context.
	HashingFailed(algorithm string, reason string)

	// BatchProcessed tracks the size and duration of a batch of independent messages
	// hashed in parallel.
	BatchProcessed(algorithm string, messages int, duration time.Duration)
}
