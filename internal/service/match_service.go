package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	"github.com/noah-isme/scholarship-match-api/internal/eligibility"
	"github.com/noah-isme/scholarship-match-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
)

type studentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type scholarshipCatalog interface {
	ListWithRequirements(ctx context.Context) ([]models.Scholarship, error)
}

type explainer interface {
	Explain(ctx context.Context, student *models.Student, scholarships []models.Scholarship) []string
}

// MatchService resolves the scholarships a student is eligible for.
type MatchService struct {
	students     studentFinder
	scholarships scholarshipCatalog
	explanations explainer
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewMatchService constructs the match service.
func NewMatchService(students studentFinder, scholarships scholarshipCatalog, explanations explainer, metrics *MetricsService, logger *zap.Logger) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		students:     students,
		scholarships: scholarships,
		explanations: explanations,
		metrics:      metrics,
		logger:       logger,
	}
}

// Evaluate loads the student and returns the matching catalog entries ordered by scholarship id.
func (s *MatchService) Evaluate(ctx context.Context, studentID string) (*models.Student, []models.Scholarship, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	catalog, err := s.scholarships.ListWithRequirements(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholarships")
	}

	matched := eligibility.FindMatches(student, catalog)
	s.metrics.ObserveMatches(len(matched))
	s.logger.Debug("scholarships matched",
		zap.String("student_id", student.ID),
		zap.Int("catalog_size", len(catalog)),
		zap.Int("matches", len(matched)),
	)
	return student, matched, nil
}

// Matches builds the full match response including reasons and explanations.
func (s *MatchService) Matches(ctx context.Context, studentID string) (*dto.StudentMatchesResponse, error) {
	return s.matches(ctx, studentID, true)
}

// MatchesWithoutExplanations is Matches minus the provider fan-out; explanation fields are left empty.
func (s *MatchService) MatchesWithoutExplanations(ctx context.Context, studentID string) (*dto.StudentMatchesResponse, error) {
	return s.matches(ctx, studentID, false)
}

func (s *MatchService) matches(ctx context.Context, studentID string, explain bool) (*dto.StudentMatchesResponse, error) {
	student, matched, err := s.Evaluate(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var explanations []string
	if explain && s.explanations != nil {
		explanations = s.explanations.Explain(ctx, student, matched)
	}

	resp := &dto.StudentMatchesResponse{
		StudentID:   student.ID,
		StudentName: student.Name,
		Matches:     make([]dto.Match, 0, len(matched)),
	}
	for i, scholarship := range matched {
		match := dto.Match{
			Scholarship:  dto.NewScholarshipSummary(scholarship),
			MatchReasons: eligibility.Reasons(student, &matched[i]),
		}
		if i < len(explanations) {
			match.Explanation = explanations[i]
		}
		resp.TotalPotentialAid += scholarship.Amount
		resp.Matches = append(resp.Matches, match)
	}
	resp.TotalMatches = len(resp.Matches)
	return resp, nil
}
