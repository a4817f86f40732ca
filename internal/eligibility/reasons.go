package eligibility

import (
	"fmt"
	"strconv"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

// Reasons lists why a matched student qualifies, one entry per constrained
// facet the student satisfies, in a fixed order. Enrollment and citizenship
// status never produce a reason.
//
// For first-generation and financial need the reason reflects the student's
// own flag being true, not equality with the required value: a scholarship
// requiring false for a student whose flag is false yields no reason.
func Reasons(student *models.Student, scholarship *models.Scholarship) []string {
	reasons := []string{
		fmt.Sprintf("GPA requirement met (%s >= %s)", formatNumber(student.GPA), formatNumber(scholarship.GPAMinimum)),
	}

	if scholarship.FirstGeneration.Constrained() && student.FirstGeneration {
		reasons = append(reasons, "First-generation student status")
	}

	if scholarship.FinancialNeed.Constrained() && student.FinancialNeed {
		reasons = append(reasons, "Financial need demonstrated")
	}

	if scholarship.Gender.Constrained() && scholarship.Gender.Allows(student.Gender) {
		reasons = append(reasons, fmt.Sprintf("%s student requirement met", scholarship.Gender.Value()))
	}

	if scholarship.Residency.Constrained() && scholarship.Residency.Allows(student.Residency) {
		reasons = append(reasons, fmt.Sprintf("%s residency requirement met", scholarship.Residency.Value()))
	}

	if scholarship.CommunityServiceHoursMinimum != nil && CommunityService(student, scholarship) {
		reasons = append(reasons, fmt.Sprintf("%d hours of community service (exceeds %d minimum)",
			*student.CommunityServiceHours, *scholarship.CommunityServiceHoursMinimum))
	}

	if scholarship.FieldsOfStudy.Constrained() && student.Major != nil && *student.Major != "" {
		reasons = append(reasons, fmt.Sprintf("%s major alignment", *student.Major))
	}

	if scholarship.MilitaryAffiliations.Constrained() && student.MilitaryAffiliation != nil {
		reasons = append(reasons, "Military affiliation requirement met")
	}

	if scholarship.Ethnicities.Constrained() && len(student.Ethnicity) > 0 {
		reasons = append(reasons, "Ethnicity requirement met")
	}

	return reasons
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
