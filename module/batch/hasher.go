// Package batch hashes many independent messages in parallel, one hash
// context per message.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/onflow/sha2/crypto/hash"
	"github.com/onflow/sha2/module"
)

// ErrStopped is returned by ComputeHashes once the hasher is stopped.
var ErrStopped = errors.New("batch hasher is stopped")

// Hasher computes the hashes of independent messages on a pool of workers.
// It is safe for concurrent use.
type Hasher struct {
	log     zerolog.Logger
	metrics module.HashingMetrics
	algo    hash.HashingAlgorithm

	mu      sync.RWMutex // guards stopped against in-flight submissions
	stopped bool
	pool    *workerpool.WorkerPool

	hashedBytes *atomic.Uint64
}

// New creates a batch hasher for the given algorithm.
func New(log zerolog.Logger, metrics module.HashingMetrics, algo hash.HashingAlgorithm, cfg Config) (*Hasher, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	_, err = hash.NewHasher(algo)
	if err != nil {
		return nil, fmt.Errorf("could not create batch hasher: %w", err)
	}

	return &Hasher{
		log: log.With().
			Str("component", "batch_hasher").
			Str("algorithm", algo.String()).
			Logger(),
		metrics:     metrics,
		algo:        algo,
		pool:        workerpool.New(cfg.Workers),
		hashedBytes: atomic.NewUint64(0),
	}, nil
}

// ComputeHashes returns the hashes of msgs in input order.
//
// Messages that could not be hashed, including those skipped because ctx was
// cancelled, leave a nil entry and contribute to the returned error.
func (b *Hasher) ComputeHashes(ctx context.Context, msgs [][]byte) ([]hash.Hash, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		return nil, ErrStopped
	}

	start := time.Now()
	hashes := make([]hash.Hash, len(msgs))
	errs := make([]error, len(msgs))

	var wg sync.WaitGroup
	wg.Add(len(msgs))
	for i, msg := range msgs {
		i, msg := i, msg
		b.pool.Submit(func() {
			defer wg.Done()
			hashes[i], errs[i] = b.hashOne(ctx, i, msg)
		})
	}
	wg.Wait()

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		b.log.Error().
			Err(err).
			Int("messages", len(msgs)).
			Int("failed", len(result.Errors)).
			Msg("could not hash batch")
		return hashes, err
	}

	duration := time.Since(start)
	b.metrics.BatchProcessed(b.algo.String(), len(msgs), duration)
	b.log.Debug().
		Int("messages", len(msgs)).
		Dur("duration", duration).
		Msg("batch hashed")
	return hashes, nil
}

func (b *Hasher) hashOne(ctx context.Context, index int, msg []byte) (hash.Hash, error) {
	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("message %d not hashed: %w", index, err)
	}

	hasher, err := hash.NewHasher(b.algo, hash.WithLogger(b.log), hash.WithMetrics(b.metrics))
	if err != nil {
		return nil, fmt.Errorf("could not create hasher for message %d: %w", index, err)
	}
	_, err = hasher.Write(msg)
	if err != nil {
		return nil, fmt.Errorf("could not hash message %d: %w", index, err)
	}

	b.hashedBytes.Add(uint64(len(msg)))
	return hasher.SumHash(), nil
}

// HashedBytes returns the total number of bytes hashed so far.
func (b *Hasher) HashedBytes() uint64 {
	return b.hashedBytes.Load()
}

// Stop waits for in-flight batches and releases the workers. Later calls to
// ComputeHashes return ErrStopped.
func (b *Hasher) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.stopped = true
	b.pool.StopWait()
}
