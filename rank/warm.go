package rank

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/selekta/selekta/core"
)

const (
	// warmBatchSize is how many candidate texts go into one embedding call.
	warmBatchSize = 32

	warmMaxAttempts = 3
	warmBaseDelay   = 500 * time.Millisecond
)

// Warm precomputes embeddings for a candidate set through a worker pool.
// Cached vectors (in memory or in the persistent cache) are skipped, so
// warming an already-warm set is cheap. Batches retry with exponential
// backoff before failing the whole warm-up.
func (e *Engine) Warm(ctx context.Context, candidates []*core.CandidateProfile) error {
	pending := e.collectCold(ctx, candidates)
	if len(pending) == 0 {
		e.logger.Debug("vector cache already warm", "candidates", len(candidates))
		return nil
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(pending); start += warmBatchSize {
		end := start + warmBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := e.warmBatch(ctx, batch); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	e.logger.Info("warmed candidate vectors", "embedded", len(pending), "total", len(candidates))
	return nil
}

// collectCold returns the profiles that have no usable cached vector,
// loading persistent cache hits into memory along the way.
func (e *Engine) collectCold(ctx context.Context, candidates []*core.CandidateProfile) []*core.CandidateProfile {
	var cold []*core.CandidateProfile
	for _, candidate := range candidates {
		e.mu.RLock()
		_, ok := e.vectors[candidate.ID]
		e.mu.RUnlock()
		if ok {
			continue
		}

		if e.cache != nil {
			text := BuildCandidateText(candidate)
			cached, err := e.cache.GetVector(ctx, e.vectorID(text), e.model)
			if err == nil {
				e.remember(candidate.ID, cached.Vector)
				continue
			}
		}

		cold = append(cold, candidate)
	}
	return cold
}

// warmBatch embeds one batch of profiles and stores the results.
func (e *Engine) warmBatch(ctx context.Context, batch []*core.CandidateProfile) error {
	texts := make([]string, len(batch))
	for i, candidate := range batch {
		texts[i] = BuildCandidateText(candidate)
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = e.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, warmMaxAttempts, warmBaseDelay)
	if err != nil {
		return err
	}
	if len(vectors) != len(batch) {
		return ErrEmbeddingMismatch
	}

	for i, candidate := range batch {
		e.remember(candidate.ID, vectors[i])
		if e.cache != nil {
			if err := e.persist(ctx, texts[i], vectors[i]); err != nil {
				e.logger.Warn("failed to persist candidate vector", "id", candidate.ID, "err", err)
			}
		}
	}
	return nil
}
