package eligibility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

func TestReasonsScenario(t *testing.T) {
	st := baseStudent()
	sc := openScholarship("sch_001")
	sc.GPAMinimum = 3.5
	sc.FirstGeneration = models.RequireTrue

	require.True(t, IsMatch(st, &sc))
	assert.Equal(t, []string{
		"GPA requirement met (3.8 >= 3.5)",
		"First-generation student status",
	}, Reasons(st, &sc))
}

func TestReasonsFullOrder(t *testing.T) {
	st := baseStudent()
	st.FinancialNeed = true
	st.Gender = strPtr("female")
	st.Residency = strPtr("in_state")
	st.CommunityServiceHours = intPtr(120)
	st.Major = strPtr("Computer Science")
	st.MilitaryAffiliation = strPtr("veteran")
	st.Ethnicity = []string{"Hispanic"}

	sc := openScholarship("sch_001")
	sc.GPAMinimum = 3
	sc.FirstGeneration = models.RequireTrue
	sc.FinancialNeed = models.RequireTrue
	sc.Gender = models.RequireEquals("female")
	sc.Residency = models.RequireEquals("in_state")
	sc.CommunityServiceHoursMinimum = intPtr(100)
	sc.FieldsOfStudy = models.NewOptionalAllowlist("Computer Science")
	sc.MilitaryAffiliations = models.NewOptionalAllowlist("veteran")
	sc.Ethnicities = models.NewOptionalAllowlist("Hispanic", "Asian")

	require.True(t, IsMatch(st, &sc))
	assert.Equal(t, []string{
		"GPA requirement met (3.8 >= 3)",
		"First-generation student status",
		"Financial need demonstrated",
		"female student requirement met",
		"in_state residency requirement met",
		"120 hours of community service (exceeds 100 minimum)",
		"Computer Science major alignment",
		"Military affiliation requirement met",
		"Ethnicity requirement met",
	}, Reasons(st, &sc))
}

func TestReasonsOnlyGPAWhenUnconstrained(t *testing.T) {
	st := baseStudent()
	st.Major = strPtr("Biology")
	st.Gender = strPtr("female")
	sc := openScholarship("sch_001")

	assert.Equal(t, []string{"GPA requirement met (3.8 >= 3)"}, Reasons(st, &sc))
}

func TestReasonsNeverMentionEnrollmentOrCitizenship(t *testing.T) {
	st := baseStudent()
	sc := openScholarship("sch_001")
	sc.EnrollmentStatuses = models.NewMandatoryAllowlist("full_time", "part_time")
	sc.CitizenshipStatuses = models.NewMandatoryAllowlist("citizen", "permanent_resident")

	for _, reason := range Reasons(st, &sc) {
		lower := strings.ToLower(reason)
		assert.NotContains(t, lower, "enrollment")
		assert.NotContains(t, lower, "citizen")
		assert.NotContains(t, lower, "full_time")
	}
}

// Boolean facets report the student's affirmative flag rather than equality
// with the required value. A scholarship requiring "not first generation"
// matches a continuing-generation student but contributes no reason.
func TestReasonsBooleanFacetQuirk(t *testing.T) {
	st := baseStudent()
	st.FirstGeneration = false
	st.FinancialNeed = false
	sc := openScholarship("sch_001")
	sc.FirstGeneration = models.RequireFalse
	sc.FinancialNeed = models.RequireFalse

	require.True(t, IsMatch(st, &sc))
	assert.Equal(t, []string{"GPA requirement met (3.8 >= 3)"}, Reasons(st, &sc))
}

// Gender and residency report equality, including non-affirmative values.
func TestReasonsEnumFacetsReportEquality(t *testing.T) {
	st := baseStudent()
	st.Gender = strPtr("non_binary")
	st.Residency = strPtr("out_of_state")
	sc := openScholarship("sch_001")
	sc.Gender = models.RequireEquals("non_binary")
	sc.Residency = models.RequireEquals("out_of_state")

	reasons := Reasons(st, &sc)
	assert.Contains(t, reasons, "non_binary student requirement met")
	assert.Contains(t, reasons, "out_of_state residency requirement met")
}

func TestReasonsFinancialNeedScenarioOmitted(t *testing.T) {
	st := baseStudent()
	sc := openScholarship("sch_001")
	sc.GPAMinimum = 3.5
	sc.FirstGeneration = models.RequireTrue

	for _, reason := range Reasons(st, &sc) {
		assert.NotEqual(t, "Financial need demonstrated", reason)
	}
}
