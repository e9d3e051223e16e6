package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/lavadevv/timeable-api/config"
	"github.com/lavadevv/timeable-api/internal/models"
	"github.com/lavadevv/timeable-api/internal/translator"
	"github.com/lavadevv/timeable-api/pkg/errors"
	"github.com/lavadevv/timeable-api/pkg/logger"
	"github.com/lavadevv/timeable-api/pkg/metrics"
	"github.com/lavadevv/timeable-api/pkg/retry"
	"go.uber.org/zap"
)

const grantTypePassword = "password"

// UpstreamClient is the narrow contract this service needs from the
// upstream adapter. Defined here so tests can mock it.
type UpstreamClient interface {
	PostForm(ctx context.Context, path string, form url.Values) ([]byte, error)
	Post(ctx context.Context, path, token string) ([]byte, error)
	PostJSON(ctx context.Context, path, token string, body any) ([]byte, error)
}

// TimeableService orchestrates the three client operations: login with
// bounded retry, and the two read operations with primary/secondary
// endpoint fallback. The instance holds no mutable state and is safe for
// concurrent use.
type TimeableService struct {
	upstream   UpstreamClient
	cfg        *config.Config
	loginRetry retry.Config
}

// NewTimeableService creates a new timetable service instance. The retry
// config is injected so tests can shrink the backoff schedule.
func NewTimeableService(upstream UpstreamClient, cfg *config.Config, loginRetry retry.Config) *TimeableService {
	return &TimeableService{
		upstream:   upstream,
		cfg:        cfg,
		loginRetry: loginRetry,
	}
}

// Login exchanges credentials for an authenticated profile. The upstream
// login endpoint has no secondary; failures are retried with exponential
// backoff and then surfaced as an authentication failure.
func (s *TimeableService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthenticatedProfile, error) {
	logger.Info("Attempting login", zap.String("username", req.Username))

	form := url.Values{}
	form.Set("username", req.Username)
	form.Set("password", req.Password)
	form.Set("grant_type", grantTypePassword)

	profile, err := retry.DoWithResult(ctx, s.loginRetry, "login", func() (*models.AuthenticatedProfile, error) {
		raw, err := s.upstream.PostForm(ctx, s.cfg.Upstream.LoginPath, form)
		if err != nil {
			return nil, err
		}

		var payload models.UpstreamLoginPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.TranslationError("login", err)
		}
		return models.ProfileFromLoginPayload(&payload), nil
	})
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
		return nil, errors.UnauthorizedError(err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info("Login successful", zap.String("username", profile.Username))
	return profile, nil
}

// GetTerms returns the ordered term list for the given bearer token.
// Any failure on the primary endpoint, including a translation failure,
// triggers one sequential attempt against the secondary endpoint; the
// secondary's outcome is authoritative.
func (s *TimeableService) GetTerms(ctx context.Context, token string) ([]models.Term, error) {
	logger.Info("Fetching terms list")

	terms, err := s.fetchTerms(ctx, token, s.cfg.Upstream.TermPath)
	if err != nil {
		logger.Warn("Primary term endpoint failed, trying secondary", zap.Error(err))
		metrics.FallbackActivations.WithLabelValues("terms").Inc()
		terms, err = s.fetchTerms(ctx, token, s.cfg.Upstream.TermFallbackPath)
	}
	if err != nil {
		metrics.TermListRequests.WithLabelValues("error").Inc()
		logger.Error("Failed to retrieve terms", zap.Error(err))
		return nil, classifyReadError("terms", err)
	}

	metrics.TermListRequests.WithLabelValues("success").Inc()
	logger.Info("Terms retrieved", zap.Int("count", len(terms)))
	return terms, nil
}

// GetSchedule returns the lesson-period table and week list for a term.
// Fallback policy matches GetTerms.
func (s *TimeableService) GetSchedule(ctx context.Context, token, termCode string) (*models.Schedule, error) {
	logger.Info("Fetching schedule", zap.String("term_code", termCode))

	body, err := models.NewScheduleListRequest(termCode)
	if err != nil {
		return nil, err
	}

	schedule, err := s.fetchSchedule(ctx, token, s.cfg.Upstream.SchedulePath, body)
	if err != nil {
		logger.Warn("Primary schedule endpoint failed, trying secondary",
			zap.String("term_code", termCode), zap.Error(err))
		metrics.FallbackActivations.WithLabelValues("schedule").Inc()
		schedule, err = s.fetchSchedule(ctx, token, s.cfg.Upstream.ScheduleFallbackPath, body)
	}
	if err != nil {
		metrics.ScheduleRequests.WithLabelValues("error").Inc()
		logger.Error("Failed to retrieve schedule", zap.String("term_code", termCode), zap.Error(err))
		return nil, classifyReadError("schedule", err)
	}

	metrics.ScheduleRequests.WithLabelValues("success").Inc()
	logger.Info("Schedule retrieved",
		zap.String("term_code", termCode),
		zap.Int("weeks", len(schedule.TimeableList)))
	return schedule, nil
}

// fetchTerms is one full attempt: HTTP call plus translation. A body that
// does not parse counts as an endpoint failure so the caller's fallback
// also covers semantically broken primaries.
func (s *TimeableService) fetchTerms(ctx context.Context, token, path string) ([]models.Term, error) {
	raw, err := s.upstream.Post(ctx, path, token)
	if err != nil {
		return nil, err
	}

	terms, err := translator.Terms(raw)
	if err != nil {
		metrics.TranslationFailures.WithLabelValues("terms").Inc()
		return nil, err
	}
	return terms, nil
}

func (s *TimeableService) fetchSchedule(ctx context.Context, token, path string, body *models.ScheduleListRequest) (*models.Schedule, error) {
	raw, err := s.upstream.PostJSON(ctx, path, token, body)
	if err != nil {
		return nil, err
	}

	schedule, err := translator.Schedule(raw)
	if err != nil {
		metrics.TranslationFailures.WithLabelValues("schedule").Inc()
		return nil, err
	}
	return schedule, nil
}

// classifyReadError keeps translation failures distinct (the HTTP call
// succeeded); everything else from a read path means both endpoints were
// unreachable or unhappy.
func classifyReadError(operation string, err error) error {
	if errors.Is(err, errors.ErrTranslation) {
		return err
	}
	return errors.UpstreamError(operation, err)
}
