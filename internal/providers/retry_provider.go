package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"sleeper-log/internal/domain"
	"sleeper-log/internal/logging"
	"sleeper-log/internal/metrics"
)

const (
	defaultRetryAttempts  = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a LeagueProvider with exponential backoff retries.
type retryingProvider struct {
	inner       LeagueProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/initial are <= 0, defaults are used. Not-found errors are
// treated as permanent and returned immediately.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		initial:     initial,
	}
}

// retryAfterPolicy wraps a backoff policy and overrides the next delay with
// a server-provided Retry-After when the last failure was a rate limit.
type retryAfterPolicy struct {
	backoff.BackOff
	retryAfter time.Duration
}

func (p *retryAfterPolicy) NextBackOff() time.Duration {
	next := p.BackOff.NextBackOff()
	if next == backoff.Stop {
		return backoff.Stop
	}
	if p.retryAfter > 0 {
		next = p.retryAfter
		p.retryAfter = 0
	}
	return next
}

// retryFetch runs fn under the retry policy, recording every attempt.
func retryFetch[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var result T

	base := backoff.NewExponentialBackOff()
	base.InitialInterval = r.initial
	policy := &retryAfterPolicy{BackOff: base}

	operation := func() error {
		start := time.Now()
		value, err := fn()
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			result = value
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rl.RetryAfter)
			policy.retryAfter = rl.RetryAfter
		}
		if _, ok := AsNotFoundError(err); ok {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		logging.Warn(r.logger, "provider fetch retry",
			slog.String(logging.FieldProvider, r.name),
			slog.String("op", op),
			slog.Duration("backoff", next),
			slog.Any("error", err),
		)
	}

	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx),
		notify,
	)
	if err != nil {
		logging.Warn(r.logger, "provider fetch failed",
			slog.String(logging.FieldProvider, r.name),
			slog.String("op", op),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("error", err),
		)
		var zero T
		return zero, err
	}
	return result, nil
}

func (r *retryingProvider) FetchLeague(ctx context.Context, leagueID string) (domain.League, error) {
	return retryFetch(ctx, r, "league", func() (domain.League, error) {
		return r.inner.FetchLeague(ctx, leagueID)
	})
}

func (r *retryingProvider) FetchState(ctx context.Context) (domain.SeasonState, error) {
	return retryFetch(ctx, r, "state", func() (domain.SeasonState, error) {
		return r.inner.FetchState(ctx)
	})
}

func (r *retryingProvider) FetchUsers(ctx context.Context, leagueID string) ([]domain.User, error) {
	return retryFetch(ctx, r, "users", func() ([]domain.User, error) {
		return r.inner.FetchUsers(ctx, leagueID)
	})
}

func (r *retryingProvider) FetchRosters(ctx context.Context, leagueID string) ([]domain.Roster, error) {
	return retryFetch(ctx, r, "rosters", func() ([]domain.Roster, error) {
		return r.inner.FetchRosters(ctx, leagueID)
	})
}

func (r *retryingProvider) FetchMatchups(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error) {
	return retryFetch(ctx, r, "matchups", func() ([]domain.Matchup, error) {
		return r.inner.FetchMatchups(ctx, leagueID, week)
	})
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) (map[string]domain.Player, error) {
	return retryFetch(ctx, r, "players", func() (map[string]domain.Player, error) {
		return r.inner.FetchPlayers(ctx)
	})
}

func (r *retryingProvider) FetchUserByName(ctx context.Context, username string) (domain.User, error) {
	return retryFetch(ctx, r, "user", func() (domain.User, error) {
		return r.inner.FetchUserByName(ctx, username)
	})
}

func (r *retryingProvider) FetchUserLeagues(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error) {
	return retryFetch(ctx, r, "user_leagues", func() ([]domain.LeagueSummary, error) {
		return r.inner.FetchUserLeagues(ctx, userID, season)
	})
}
