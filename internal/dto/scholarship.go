package dto

import "github.com/noah-isme/scholarship-match-api/internal/models"

// ScholarshipListItem is one row of the catalog listing.
type ScholarshipListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Deadline string `json:"deadline"`
	Provider string `json:"provider"`
}

// ScholarshipListResponse is returned by GET /scholarships.
type ScholarshipListResponse struct {
	Scholarships []ScholarshipListItem `json:"scholarships"`
	Total        int                   `json:"total"`
}

// RequirementCount reports how many allow-list rows a scholarship carries for one facet.
type RequirementCount struct {
	Facet models.RequirementFacet `json:"facet"`
	Count int                     `json:"count"`
	// Mandatory facets admit nobody when Count is zero; optional ones admit everybody.
	Mandatory bool `json:"mandatory"`
}

// ScholarshipRequirementsResponse is returned by GET /scholarships/{id}/requirements.
type ScholarshipRequirementsResponse struct {
	ScholarshipID string             `json:"scholarship_id"`
	Requirements  []RequirementCount `json:"requirements"`
}
