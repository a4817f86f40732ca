package dto

import "github.com/noah-isme/scholarship-match-api/internal/models"

// DateLayout is the wire format for scholarship deadlines.
const DateLayout = "2006-01-02"

// ScholarshipSummary is the scholarship projection embedded in a match.
type ScholarshipSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   int64   `json:"amount"`
	Provider string  `json:"provider"`
	Deadline string  `json:"deadline"`
	URL      *string `json:"url"`
}

// Match pairs a scholarship with the reasons it fits and a generated explanation.
type Match struct {
	Scholarship  ScholarshipSummary `json:"scholarship"`
	MatchReasons []string           `json:"match_reasons"`
	Explanation  string             `json:"explanation"`
}

// StudentMatchesResponse is returned by GET /students/{id}/matches.
type StudentMatchesResponse struct {
	StudentID         string  `json:"student_id"`
	StudentName       string  `json:"student_name"`
	TotalMatches      int     `json:"total_matches"`
	TotalPotentialAid int64   `json:"total_potential_aid"`
	Matches           []Match `json:"matches"`
}

// NewScholarshipSummary projects a catalog entry for the match response.
func NewScholarshipSummary(s models.Scholarship) ScholarshipSummary {
	return ScholarshipSummary{
		ID:       s.ID,
		Name:     s.Name,
		Amount:   s.Amount,
		Provider: s.Provider,
		Deadline: s.Deadline.Format(DateLayout),
		URL:      s.URL,
	}
}
