// Copyright 2025 Selekta
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package rank

import (
	"context"
	"log/slog"
	"time"
)

// RetryWithBackoff runs op until it succeeds or maxAttempts attempts have
// failed, sleeping between attempts with a doubling delay that starts at
// baseDelay. Context cancellation interrupts both the wait and any further
// attempts; otherwise the error from the final attempt is returned.
func RetryWithBackoff(ctx context.Context, op func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt == 0 {
			if ctx.Err() != nil {
				return ctx.Err()
			}
		} else {
			timer := time.NewTimer(baseDelay << (attempt - 1))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if err = op(); err == nil {
			if attempt > 0 {
				slog.Debug("retried operation succeeded", "attempt", attempt+1)
			}
			return nil
		}
		slog.Debug("retryable operation failed",
			"attempt", attempt+1, "maxAttempts", maxAttempts, "error", err)
	}

	return err
}
