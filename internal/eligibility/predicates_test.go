package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		name   string
		check  Predicate
		mutate func(st *models.Student, sc *models.Scholarship)
		want   bool
	}{
		{"gpa equal to minimum", GPA, func(st *models.Student, sc *models.Scholarship) { sc.GPAMinimum = 3.8 }, true},
		{"gpa below minimum", GPA, func(st *models.Student, sc *models.Scholarship) { sc.GPAMinimum = 3.81 }, false},

		{"enrollment listed", EnrollmentStatus, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"enrollment not listed", EnrollmentStatus, func(st *models.Student, sc *models.Scholarship) { st.EnrollmentStatus = "part_time" }, false},
		{"enrollment empty list", EnrollmentStatus, func(st *models.Student, sc *models.Scholarship) {
			sc.EnrollmentStatuses = models.NewMandatoryAllowlist()
		}, false},
		{"enrollment case sensitive", EnrollmentStatus, func(st *models.Student, sc *models.Scholarship) { st.EnrollmentStatus = "Full_Time" }, false},

		{"citizenship listed", CitizenshipStatus, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"citizenship empty list", CitizenshipStatus, func(st *models.Student, sc *models.Scholarship) {
			sc.CitizenshipStatuses = models.NewMandatoryAllowlist()
		}, false},

		{"fields unconstrained without major", FieldOfStudy, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"fields listed major", FieldOfStudy, func(st *models.Student, sc *models.Scholarship) {
			st.Major = strPtr("Biology")
			sc.FieldsOfStudy = models.NewOptionalAllowlist("Biology", "Chemistry")
		}, true},
		{"fields unlisted major", FieldOfStudy, func(st *models.Student, sc *models.Scholarship) {
			st.Major = strPtr("History")
			sc.FieldsOfStudy = models.NewOptionalAllowlist("Biology")
		}, false},
		{"fields missing major", FieldOfStudy, func(st *models.Student, sc *models.Scholarship) {
			sc.FieldsOfStudy = models.NewOptionalAllowlist("Biology")
		}, false},

		{"first generation unconstrained", FirstGeneration, func(st *models.Student, sc *models.Scholarship) { st.FirstGeneration = false }, true},
		{"first generation required false", FirstGeneration, func(st *models.Student, sc *models.Scholarship) { sc.FirstGeneration = models.RequireFalse }, false},
		{"first generation required true", FirstGeneration, func(st *models.Student, sc *models.Scholarship) { sc.FirstGeneration = models.RequireTrue }, true},

		{"financial need required true", FinancialNeed, func(st *models.Student, sc *models.Scholarship) { sc.FinancialNeed = models.RequireTrue }, false},
		{"financial need required false", FinancialNeed, func(st *models.Student, sc *models.Scholarship) { sc.FinancialNeed = models.RequireFalse }, true},

		{"gender unconstrained", Gender, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"gender null student", Gender, func(st *models.Student, sc *models.Scholarship) { sc.Gender = models.RequireEquals("female") }, false},
		{"gender equal", Gender, func(st *models.Student, sc *models.Scholarship) {
			st.Gender = strPtr("female")
			sc.Gender = models.RequireEquals("female")
		}, true},
		{"gender differs", Gender, func(st *models.Student, sc *models.Scholarship) {
			st.Gender = strPtr("male")
			sc.Gender = models.RequireEquals("female")
		}, false},

		{"residency null student", Residency, func(st *models.Student, sc *models.Scholarship) { sc.Residency = models.RequireEquals("in_state") }, false},
		{"residency equal", Residency, func(st *models.Student, sc *models.Scholarship) {
			st.Residency = strPtr("in_state")
			sc.Residency = models.RequireEquals("in_state")
		}, true},

		{"service no minimum", CommunityService, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"service null hours", CommunityService, func(st *models.Student, sc *models.Scholarship) { sc.CommunityServiceHoursMinimum = intPtr(0) }, false},
		{"service at minimum", CommunityService, func(st *models.Student, sc *models.Scholarship) {
			st.CommunityServiceHours = intPtr(50)
			sc.CommunityServiceHoursMinimum = intPtr(50)
		}, true},
		{"service below minimum", CommunityService, func(st *models.Student, sc *models.Scholarship) {
			st.CommunityServiceHours = intPtr(49)
			sc.CommunityServiceHoursMinimum = intPtr(50)
		}, false},

		{"military unconstrained", MilitaryAffiliation, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"military null student", MilitaryAffiliation, func(st *models.Student, sc *models.Scholarship) {
			sc.MilitaryAffiliations = models.NewOptionalAllowlist("veteran")
		}, false},
		{"military listed", MilitaryAffiliation, func(st *models.Student, sc *models.Scholarship) {
			st.MilitaryAffiliation = strPtr("dependent")
			sc.MilitaryAffiliations = models.NewOptionalAllowlist("veteran", "dependent")
		}, true},

		{"ethnicity unconstrained no tags", Ethnicity, func(st *models.Student, sc *models.Scholarship) {}, true},
		{"ethnicity intersection not superset", Ethnicity, func(st *models.Student, sc *models.Scholarship) {
			st.Ethnicity = []string{"A", "B"}
			sc.Ethnicities = models.NewOptionalAllowlist("B", "C")
		}, true},
		{"ethnicity disjoint", Ethnicity, func(st *models.Student, sc *models.Scholarship) {
			st.Ethnicity = []string{"A"}
			sc.Ethnicities = models.NewOptionalAllowlist("B", "C")
		}, false},
		{"ethnicity no tags", Ethnicity, func(st *models.Student, sc *models.Scholarship) {
			sc.Ethnicities = models.NewOptionalAllowlist("B")
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := baseStudent()
			sc := openScholarship("sch_001")
			tc.mutate(st, &sc)
			assert.Equal(t, tc.want, tc.check(st, &sc))
		})
	}
}

func TestRulesCoverEveryFacet(t *testing.T) {
	seen := map[Facet]bool{}
	for _, rule := range Rules {
		seen[rule.Facet] = true
	}
	assert.Len(t, seen, 11)
	assert.Equal(t, FacetGPA, Rules[0].Facet)
}
