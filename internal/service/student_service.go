package service

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	"github.com/noah-isme/scholarship-match-api/internal/models"
	"github.com/noah-isme/scholarship-match-api/internal/repository"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
)

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
}

// StudentService handles student registration.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
		validate.RegisterTagNameFunc(jsonFieldName)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// Create registers a new student, deriving financial need from household income.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentCreatedResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.EnrollmentStatus = strings.TrimSpace(req.EnrollmentStatus)
	req.CitizenshipStatus = strings.TrimSpace(req.CitizenshipStatus)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	student := &models.Student{
		Name:                  req.Name,
		Email:                 req.Email,
		GPA:                   *req.GPA,
		EnrollmentStatus:      req.EnrollmentStatus,
		CitizenshipStatus:     req.CitizenshipStatus,
		Major:                 blankToNil(req.Major),
		GraduationYear:        req.GraduationYear,
		Gender:                blankToNil(req.Gender),
		HouseholdIncome:       req.HouseholdIncome,
		FinancialNeed:         models.HasFinancialNeed(req.HouseholdIncome),
		FirstGeneration:       req.FirstGeneration,
		MilitaryAffiliation:   blankToNil(req.MilitaryAffiliation),
		Residency:             blankToNil(req.Residency),
		CommunityServiceHours: req.CommunityServiceHours,
		State:                 blankToNil(req.State),
		Ethnicity:             uniqueTags(req.Ethnicity),
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Email already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	s.logger.Info("student registered", zap.String("student_id", student.ID))
	return &dto.StudentCreatedResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}, nil
}

// validationMessage lists offending fields in the order the validator reported them.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid student payload"
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return "invalid student payload: " + strings.Join(fields, ", ")
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func blankToNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
