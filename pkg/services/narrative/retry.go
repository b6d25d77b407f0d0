package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// RetryError reports that every attempt was exhausted.
type RetryError struct {
	Attempts int
	Last     error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetryError) Unwrap() error {
	return e.Last
}

type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	timeout     time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts: 3,
		baseDelay:   time.Second,
		maxDelay:    15 * time.Second,
		timeout:     90 * time.Second,
	}
}

// do runs fn with exponential backoff under an overall deadline. Rate limits
// and server errors retry; auth and other client errors do not.
func (p retryPolicy) do(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	logger := zerolog.Ctx(ctx)

	var last error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		last = err

		if !retryable(err) {
			return err
		}
		if attempt == p.maxAttempts {
			break
		}

		delay := p.baseDelay << (attempt - 1)
		if delay > p.maxDelay {
			delay = p.maxDelay
		}
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("llm call failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return &RetryError{Attempts: attempt, Last: ctx.Err()}
		}
	}
	return &RetryError{Attempts: p.maxAttempts, Last: last}
}

// retryable classifies by error text, the same way the API surfaces these:
// auth failures and plain client errors are final, rate limits and the rest
// are worth another attempt.
func retryable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, final := range []string{"401", "403", "authentication", "invalid api key"} {
		if strings.Contains(msg, final) {
			return false
		}
	}
	if strings.Contains(msg, "400") && !strings.Contains(msg, "429") {
		return false
	}
	return true
}
