package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	"github.com/noah-isme/scholarship-match-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
)

type scholarshipRepository interface {
	List(ctx context.Context) ([]models.ScholarshipSummary, error)
	Exists(ctx context.Context, id string) (bool, error)
	CountRequirementSet(ctx context.Context, scholarshipID string, facet models.RequirementFacet) (int, error)
}

// ScholarshipService exposes the scholarship catalog.
type ScholarshipService struct {
	repo   scholarshipRepository
	logger *zap.Logger
}

// NewScholarshipService constructs the scholarship service.
func NewScholarshipService(repo scholarshipRepository, logger *zap.Logger) *ScholarshipService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScholarshipService{repo: repo, logger: logger}
}

// List returns every scholarship ordered by id.
func (s *ScholarshipService) List(ctx context.Context) (*dto.ScholarshipListResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scholarships")
	}
	items := make([]dto.ScholarshipListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ScholarshipListItem{
			ID:       row.ID,
			Name:     row.Name,
			Amount:   row.Amount,
			Deadline: row.Deadline.Format(dto.DateLayout),
			Provider: row.Provider,
		})
	}
	return &dto.ScholarshipListResponse{Scholarships: items, Total: len(items)}, nil
}

// Requirements counts the allow-list rows recorded for each list-valued facet.
func (s *ScholarshipService) Requirements(ctx context.Context, scholarshipID string) (*dto.ScholarshipRequirementsResponse, error) {
	exists, err := s.repo.Exists(ctx, scholarshipID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholarship")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
	}

	resp := &dto.ScholarshipRequirementsResponse{
		ScholarshipID: scholarshipID,
		Requirements:  make([]dto.RequirementCount, 0, len(models.RequirementFacets)),
	}
	for _, facet := range models.RequirementFacets {
		count, err := s.repo.CountRequirementSet(ctx, scholarshipID, facet)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count requirements")
		}
		resp.Requirements = append(resp.Requirements, dto.RequirementCount{
			Facet:     facet,
			Count:     count,
			Mandatory: facet.Mandatory(),
		})
	}
	return resp, nil
}
