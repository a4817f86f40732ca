package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

// QueryObserver receives database timings, typically the metrics service.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

var requirementTables = map[models.RequirementFacet]string{
	models.FacetEnrollmentStatus:    "scholarship_enrollment_status_eligibility",
	models.FacetCitizenshipStatus:   "scholarship_citizenship_eligibility",
	models.FacetFieldOfStudy:        "scholarship_fields_of_study",
	models.FacetMilitaryAffiliation: "scholarship_military_affiliation_eligibility",
	models.FacetEthnicity:           "scholarship_ethnicity_eligibility",
}

// scholarshipRow mirrors the hydrated catalog query.
type scholarshipRow struct {
	ID                           string         `db:"id"`
	Name                         string         `db:"name"`
	Amount                       int64          `db:"amount"`
	Provider                     string         `db:"provider"`
	Deadline                     time.Time      `db:"deadline"`
	URL                          sql.NullString `db:"url"`
	GPAMinimum                   float64        `db:"gpa_minimum"`
	FirstGeneration              sql.NullBool   `db:"first_generation"`
	FinancialNeed                sql.NullBool   `db:"financial_need"`
	Gender                       sql.NullString `db:"gender"`
	Residency                    sql.NullString `db:"residency"`
	CommunityServiceHoursMinimum sql.NullInt64  `db:"community_service_hours_minimum"`
	EnrollmentStatuses           pq.StringArray `db:"enrollment_statuses"`
	CitizenshipStatuses          pq.StringArray `db:"citizenship_statuses"`
	FieldsOfStudy                pq.StringArray `db:"fields_of_study"`
	MilitaryAffiliations         pq.StringArray `db:"military_affiliations"`
	Ethnicities                  pq.StringArray `db:"ethnicities"`
}

func (r scholarshipRow) toModel() models.Scholarship {
	s := models.Scholarship{
		ID:                   r.ID,
		Name:                 r.Name,
		Amount:               r.Amount,
		Provider:             r.Provider,
		Deadline:             r.Deadline,
		GPAMinimum:           r.GPAMinimum,
		FirstGeneration:      models.NewBoolRequirement(nullBool(r.FirstGeneration)),
		FinancialNeed:        models.NewBoolRequirement(nullBool(r.FinancialNeed)),
		Gender:               models.NewEnumRequirement(nullString(r.Gender)),
		Residency:            models.NewEnumRequirement(nullString(r.Residency)),
		EnrollmentStatuses:   models.NewMandatoryAllowlist(r.EnrollmentStatuses...),
		CitizenshipStatuses:  models.NewMandatoryAllowlist(r.CitizenshipStatuses...),
		FieldsOfStudy:        models.NewOptionalAllowlist(r.FieldsOfStudy...),
		MilitaryAffiliations: models.NewOptionalAllowlist(r.MilitaryAffiliations...),
		Ethnicities:          models.NewOptionalAllowlist(r.Ethnicities...),
		URL:                  nullString(r.URL),
	}
	if r.CommunityServiceHoursMinimum.Valid {
		hours := int(r.CommunityServiceHoursMinimum.Int64)
		s.CommunityServiceHoursMinimum = &hours
	}
	return s
}

// ScholarshipRepository reads the scholarship catalog.
type ScholarshipRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewScholarshipRepository constructs a ScholarshipRepository. observer may be nil.
func NewScholarshipRepository(db *sqlx.DB, observer QueryObserver) *ScholarshipRepository {
	return &ScholarshipRepository{db: db, observer: observer}
}

const listWithRequirementsQuery = `SELECT s.id, s.name, s.amount, s.provider, s.deadline, s.url,
        s.gpa_minimum, s.first_generation, s.financial_need, s.gender, s.residency, s.community_service_hours_minimum,
        COALESCE((SELECT array_agg(e.enrollment_status ORDER BY e.enrollment_status) FROM scholarship_enrollment_status_eligibility e WHERE e.scholarship_id = s.id), '{}') AS enrollment_statuses,
        COALESCE((SELECT array_agg(c.citizenship_status ORDER BY c.citizenship_status) FROM scholarship_citizenship_eligibility c WHERE c.scholarship_id = s.id), '{}') AS citizenship_statuses,
        COALESCE((SELECT array_agg(f.field_of_study ORDER BY f.field_of_study) FROM scholarship_fields_of_study f WHERE f.scholarship_id = s.id), '{}') AS fields_of_study,
        COALESCE((SELECT array_agg(m.military_affiliation ORDER BY m.military_affiliation) FROM scholarship_military_affiliation_eligibility m WHERE m.scholarship_id = s.id), '{}') AS military_affiliations,
        COALESCE((SELECT array_agg(x.ethnicity ORDER BY x.ethnicity) FROM scholarship_ethnicity_eligibility x WHERE x.scholarship_id = s.id), '{}') AS ethnicities
        FROM scholarships s
        ORDER BY s.id ASC`

// ListWithRequirements loads every scholarship with all requirement sets in a single query.
func (r *ScholarshipRepository) ListWithRequirements(ctx context.Context) ([]models.Scholarship, error) {
	start := time.Now()
	var rows []scholarshipRow
	err := r.db.SelectContext(ctx, &rows, listWithRequirementsQuery)
	r.observe("scholarships_with_requirements", start)
	if err != nil {
		return nil, fmt.Errorf("list scholarships with requirements: %w", err)
	}
	scholarships := make([]models.Scholarship, 0, len(rows))
	for _, row := range rows {
		scholarships = append(scholarships, row.toModel())
	}
	return scholarships, nil
}

// List returns the catalog summary ordered by ID.
func (r *ScholarshipRepository) List(ctx context.Context) ([]models.ScholarshipSummary, error) {
	start := time.Now()
	const query = `SELECT id, name, amount, deadline, provider FROM scholarships ORDER BY id ASC`
	var scholarships []models.ScholarshipSummary
	err := r.db.SelectContext(ctx, &scholarships, query)
	r.observe("scholarships_list", start)
	if err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	return scholarships, nil
}

// Exists checks whether a scholarship with the ID exists.
func (r *ScholarshipRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM scholarships WHERE id = $1 LIMIT 1", id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check scholarship: %w", err)
	}
	return true, nil
}

// CountRequirementSet counts the entries of one requirement set of a scholarship.
func (r *ScholarshipRepository) CountRequirementSet(ctx context.Context, scholarshipID string, facet models.RequirementFacet) (int, error) {
	table, ok := requirementTables[facet]
	if !ok {
		return 0, fmt.Errorf("unknown requirement facet %q", facet)
	}
	start := time.Now()
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE scholarship_id = $1", table)
	var count int
	err := r.db.GetContext(ctx, &count, query, scholarshipID)
	r.observe("requirement_count_"+string(facet), start)
	if err != nil {
		return 0, fmt.Errorf("count %s requirements: %w", facet, err)
	}
	return count, nil
}

func (r *ScholarshipRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

func nullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
