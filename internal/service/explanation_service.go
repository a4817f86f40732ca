package service

import (
	"context"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/ai"
	"github.com/noah-isme/scholarship-match-api/internal/models"
)

const (
	// FailedExplanation replaces an explanation whose provider call failed.
	FailedExplanation = "Explanation could not be generated at this time."
	// UnconfiguredExplanation is used for every match when no provider is configured.
	UnconfiguredExplanation = "Explanation unavailable - AI service not configured."

	outcomeCached       = "cached"
	outcomeUnconfigured = "unconfigured"
	outcomePanic        = "panic"
)

// ExplanationService fans explanation requests out to the provider and joins the results in input order.
type ExplanationService struct {
	provider ai.Explainer
	cache    *ExplanationCache
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewExplanationService constructs the orchestrator. A nil provider means the AI service is not configured
// and a nil cache disables caching.
func NewExplanationService(provider ai.Explainer, cache *ExplanationCache, metrics *MetricsService, logger *zap.Logger) *ExplanationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplanationService{provider: provider, cache: cache, metrics: metrics, logger: logger}
}

// Configured reports whether explanations will be requested from a provider.
func (s *ExplanationService) Configured() bool {
	return s != nil && s.provider != nil
}

// Explain returns one explanation per scholarship, aligned with the input slice.
// Failures never propagate; the affected entry carries FailedExplanation instead.
func (s *ExplanationService) Explain(ctx context.Context, student *models.Student, scholarships []models.Scholarship) []string {
	if len(scholarships) == 0 {
		return []string{}
	}
	if !s.Configured() {
		out := make([]string, len(scholarships))
		for i := range out {
			out[i] = UnconfiguredExplanation
		}
		if s != nil {
			s.record(outcomeUnconfigured, len(out))
		}
		return out
	}

	// One goroutine per match; iter.Map alone would cap the fan-out at GOMAXPROCS.
	mapper := iter.Mapper[models.Scholarship, string]{MaxGoroutines: len(scholarships)}
	return mapper.Map(scholarships, func(scholarship *models.Scholarship) string {
		return s.explainOne(ctx, student, scholarship)
	})
}

func (s *ExplanationService) explainOne(ctx context.Context, student *models.Student, scholarship *models.Scholarship) (explanation string) {
	if cached, ok := s.cache.Lookup(ctx, student.ID, scholarship.ID); ok {
		s.record(outcomeCached, 1)
		return cached
	}

	defer func() {
		if r := recover(); r != nil {
			s.record(outcomePanic, 1)
			s.logger.Error("explanation provider panicked",
				zap.String("student_id", student.ID),
				zap.String("scholarship_id", scholarship.ID),
				zap.Any("panic", r),
			)
			explanation = FailedExplanation
		}
	}()

	explanation, err := s.provider.GenerateExplanation(ctx, student, scholarship)
	outcome := ai.Outcome(err)
	s.record(outcome, 1)
	if err != nil {
		s.logger.Warn("explanation generation failed",
			zap.String("student_id", student.ID),
			zap.String("scholarship_id", scholarship.ID),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		return FailedExplanation
	}

	if explanation != ai.EmptyResponseExplanation {
		s.cache.Store(ctx, student.ID, scholarship.ID, explanation)
	}
	return explanation
}

func (s *ExplanationService) record(outcome string, n int) {
	for i := 0; i < n; i++ {
		s.metrics.RecordExplanation(outcome)
	}
}

// Purge drops cached explanations for one student, or for everyone when studentID is empty.
func (s *ExplanationService) Purge(ctx context.Context, studentID string) error {
	if s == nil {
		return nil
	}
	return s.cache.Purge(ctx, studentID)
}
