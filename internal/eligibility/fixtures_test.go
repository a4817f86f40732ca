package eligibility

import (
	"time"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func baseStudent() *models.Student {
	return &models.Student{
		ID:                "stu_001",
		Name:              "Ana Lopez",
		GPA:               3.8,
		EnrollmentStatus:  "full_time",
		CitizenshipStatus: "citizen",
		FirstGeneration:   true,
		FinancialNeed:     false,
	}
}

// openScholarship has every optional facet unconstrained.
func openScholarship(id string) models.Scholarship {
	return models.Scholarship{
		ID:                  id,
		Name:                "Scholarship " + id,
		Amount:              1000,
		Provider:            "Foundation",
		Deadline:            time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		GPAMinimum:          3.0,
		EnrollmentStatuses:  models.NewMandatoryAllowlist("full_time"),
		CitizenshipStatuses: models.NewMandatoryAllowlist("citizen"),
	}
}
