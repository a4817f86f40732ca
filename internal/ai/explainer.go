// Package ai defines the contract for generating match explanations and the
// errors providers report.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

// Explainer produces a short free-text explanation of why a scholarship suits a student.
type Explainer interface {
	GenerateExplanation(ctx context.Context, student *models.Student, scholarship *models.Scholarship) (string, error)
}

var (
	ErrUnauthorized = errors.New("explanation provider rejected the api key")
	ErrRateLimited  = errors.New("explanation provider rate limit exceeded")
	ErrUnavailable  = errors.New("explanation provider temporarily unavailable")
)

// ProviderError wraps any other provider failure.
type ProviderError struct {
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generate explanation (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("generate explanation: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Outcome labels an explanation failure for logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "generated"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// EmptyResponseExplanation is returned when the provider answers with no text.
const EmptyResponseExplanation = "Explanation could not be generated."

// SystemInstruction frames the provider as a scholarship advisor.
const SystemInstruction = "You are a helpful scholarship advisor who writes personalized, encouraging explanations " +
	"for why scholarships match students. Keep responses to 2-3 sentences and reference specific student qualifications."

var printer = message.NewPrinter(language.English)

// BuildPrompt describes the student's qualifications and the scholarship's criteria.
func BuildPrompt(student *models.Student, scholarship *models.Scholarship) string {
	studentDetails := []string{
		"Student: " + student.Name,
		"GPA: " + strconv.FormatFloat(student.GPA, 'f', -1, 64),
	}
	if student.Major != nil && *student.Major != "" {
		studentDetails = append(studentDetails, "Major: "+*student.Major)
	}
	studentDetails = append(studentDetails, "Enrollment Status: "+student.EnrollmentStatus)
	if student.FirstGeneration {
		studentDetails = append(studentDetails, "First-generation college student")
	}
	if student.FinancialNeed {
		studentDetails = append(studentDetails, "Demonstrates financial need")
	}
	if student.Gender != nil {
		studentDetails = append(studentDetails, "Gender: "+*student.Gender)
	}
	if student.Residency != nil {
		studentDetails = append(studentDetails, "Residency: "+*student.Residency)
	}
	if len(student.Ethnicity) > 0 {
		studentDetails = append(studentDetails, "Ethnicity: "+strings.Join(student.Ethnicity, ", "))
	}
	if student.MilitaryAffiliation != nil {
		studentDetails = append(studentDetails, "Military affiliation: "+*student.MilitaryAffiliation)
	}
	if student.CommunityServiceHours != nil && *student.CommunityServiceHours > 0 {
		studentDetails = append(studentDetails, printer.Sprintf("Community service: %d hours", *student.CommunityServiceHours))
	}

	scholarshipDetails := []string{
		"Scholarship: " + scholarship.Name,
		printer.Sprintf("Amount: $%d", scholarship.Amount),
		"Provider: " + scholarship.Provider,
		"Minimum GPA: " + strconv.FormatFloat(scholarship.GPAMinimum, 'f', -1, 64),
	}
	if v := scholarship.FirstGeneration.Ptr(); v != nil {
		scholarshipDetails = append(scholarshipDetails, fmt.Sprintf("First-generation required: %t", *v))
	}
	if v := scholarship.FinancialNeed.Ptr(); v != nil {
		scholarshipDetails = append(scholarshipDetails, fmt.Sprintf("Financial need required: %t", *v))
	}
	if scholarship.Gender.Constrained() {
		scholarshipDetails = append(scholarshipDetails, "Gender requirement: "+scholarship.Gender.Value())
	}

	return fmt.Sprintf(`Explain why the %q scholarship is a good match for this student:

Student Qualifications:
%s

Scholarship Details:
%s

Write an encouraging 2-3 sentence explanation that references specific student qualifications and explains why this scholarship is a good fit.`,
		scholarship.Name, strings.Join(studentDetails, "\n"), strings.Join(scholarshipDetails, "\n"))
}
