// Package eligibility decides whether a student qualifies for a scholarship
// and explains which criteria a qualifying student satisfied.
package eligibility

import "github.com/noah-isme/scholarship-match-api/internal/models"

// Facet names one eligibility dimension.
type Facet string

// Facets, in the order reasons are reported.
const (
	FacetGPA                 Facet = "gpa"
	FacetEnrollmentStatus    Facet = "enrollment_status"
	FacetCitizenshipStatus   Facet = "citizenship_status"
	FacetFieldOfStudy        Facet = "field_of_study"
	FacetFirstGeneration     Facet = "first_generation"
	FacetFinancialNeed       Facet = "financial_need"
	FacetGender              Facet = "gender"
	FacetResidency           Facet = "residency"
	FacetCommunityService    Facet = "community_service"
	FacetMilitaryAffiliation Facet = "military_affiliation"
	FacetEthnicity           Facet = "ethnicity"
)

// Predicate evaluates a single facet.
type Predicate func(student *models.Student, scholarship *models.Scholarship) bool

// Rule pairs a facet with its predicate.
type Rule struct {
	Facet Facet
	Check Predicate
}

// Rules holds every predicate, scalar comparisons before set lookups.
var Rules = []Rule{
	{FacetGPA, GPA},
	{FacetFirstGeneration, FirstGeneration},
	{FacetFinancialNeed, FinancialNeed},
	{FacetGender, Gender},
	{FacetResidency, Residency},
	{FacetCommunityService, CommunityService},
	{FacetEnrollmentStatus, EnrollmentStatus},
	{FacetCitizenshipStatus, CitizenshipStatus},
	{FacetFieldOfStudy, FieldOfStudy},
	{FacetMilitaryAffiliation, MilitaryAffiliation},
	{FacetEthnicity, Ethnicity},
}

// GPA requires the student GPA to reach the scholarship minimum.
func GPA(st *models.Student, sc *models.Scholarship) bool {
	return st.GPA >= sc.GPAMinimum
}

// EnrollmentStatus requires the student status in the scholarship's enrollment list. An empty list rejects everyone.
func EnrollmentStatus(st *models.Student, sc *models.Scholarship) bool {
	return sc.EnrollmentStatuses.Permits(st.EnrollmentStatus)
}

// CitizenshipStatus requires the student status in the scholarship's citizenship list. An empty list rejects everyone.
func CitizenshipStatus(st *models.Student, sc *models.Scholarship) bool {
	return sc.CitizenshipStatuses.Permits(st.CitizenshipStatus)
}

// FieldOfStudy requires a declared major from the list, when the scholarship lists any.
func FieldOfStudy(st *models.Student, sc *models.Scholarship) bool {
	return sc.FieldsOfStudy.Permits(st.Major)
}

// FirstGeneration compares the student flag with the scholarship requirement, if declared.
func FirstGeneration(st *models.Student, sc *models.Scholarship) bool {
	return sc.FirstGeneration.Allows(st.FirstGeneration)
}

// FinancialNeed compares the derived need flag with the scholarship requirement, if declared.
func FinancialNeed(st *models.Student, sc *models.Scholarship) bool {
	return sc.FinancialNeed.Allows(st.FinancialNeed)
}

// Gender requires an exact match when the scholarship names a gender.
func Gender(st *models.Student, sc *models.Scholarship) bool {
	return sc.Gender.Allows(st.Gender)
}

// Residency requires an exact match when the scholarship names a residency.
func Residency(st *models.Student, sc *models.Scholarship) bool {
	return sc.Residency.Allows(st.Residency)
}

// CommunityService requires recorded hours at or above the minimum, when one is set.
func CommunityService(st *models.Student, sc *models.Scholarship) bool {
	if sc.CommunityServiceHoursMinimum == nil {
		return true
	}
	return st.CommunityServiceHours != nil && *st.CommunityServiceHours >= *sc.CommunityServiceHoursMinimum
}

// MilitaryAffiliation requires a listed affiliation, when the scholarship lists any.
func MilitaryAffiliation(st *models.Student, sc *models.Scholarship) bool {
	return sc.MilitaryAffiliations.Permits(st.MilitaryAffiliation)
}

// Ethnicity needs any overlap between the student's tags and the allowed list.
func Ethnicity(st *models.Student, sc *models.Scholarship) bool {
	return sc.Ethnicities.PermitsAny(st.Ethnicity)
}
