package models

import "time"

// RequirementFacet identifies one of the list-valued eligibility facets.
type RequirementFacet string

const (
	FacetEnrollmentStatus    RequirementFacet = "enrollment_status"
	FacetCitizenshipStatus   RequirementFacet = "citizenship_status"
	FacetFieldOfStudy        RequirementFacet = "field_of_study"
	FacetMilitaryAffiliation RequirementFacet = "military_affiliation"
	FacetEthnicity           RequirementFacet = "ethnicity"
)

// RequirementFacets lists every list-valued facet in display order.
var RequirementFacets = []RequirementFacet{
	FacetEnrollmentStatus,
	FacetCitizenshipStatus,
	FacetFieldOfStudy,
	FacetMilitaryAffiliation,
	FacetEthnicity,
}

// Mandatory reports whether an empty allow-list for the facet admits nobody.
func (f RequirementFacet) Mandatory() bool {
	return f == FacetEnrollmentStatus || f == FacetCitizenshipStatus
}

// Scholarship is a catalog entry hydrated with all of its eligibility requirements.
type Scholarship struct {
	ID       string
	Name     string
	Amount   int64
	Provider string
	Deadline time.Time
	URL      *string

	GPAMinimum float64

	FirstGeneration BoolRequirement
	FinancialNeed   BoolRequirement
	Gender          EnumRequirement
	Residency       EnumRequirement
	// CommunityServiceHoursMinimum is nil when no service is required.
	CommunityServiceHoursMinimum *int

	EnrollmentStatuses   MandatoryAllowlist
	CitizenshipStatuses  MandatoryAllowlist
	FieldsOfStudy        OptionalAllowlist
	MilitaryAffiliations OptionalAllowlist
	Ethnicities          OptionalAllowlist
}

// ScholarshipSummary is the catalog listing projection.
type ScholarshipSummary struct {
	ID       string    `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Amount   int64     `db:"amount" json:"amount"`
	Deadline time.Time `db:"deadline" json:"deadline"`
	Provider string    `db:"provider" json:"provider"`
}
