package eligibility

import (
	"sort"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

// IsMatch reports whether the student satisfies every rule.
func IsMatch(student *models.Student, scholarship *models.Scholarship) bool {
	for _, rule := range Rules {
		if !rule.Check(student, scholarship) {
			return false
		}
	}
	return true
}

// Failed lists the facets the student does not satisfy, in rule order.
func Failed(student *models.Student, scholarship *models.Scholarship) []Facet {
	var failed []Facet
	for _, rule := range Rules {
		if !rule.Check(student, scholarship) {
			failed = append(failed, rule.Facet)
		}
	}
	return failed
}

// FindMatches returns the scholarships the student qualifies for, ordered by ID ascending.
// The catalog is not modified.
func FindMatches(student *models.Student, catalog []models.Scholarship) []models.Scholarship {
	matches := make([]models.Scholarship, 0, len(catalog))
	for i := range catalog {
		if IsMatch(student, &catalog[i]) {
			matches = append(matches, catalog[i])
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches
}
