package models

import "time"

// FinancialNeedIncomeThreshold is the household income below which a student demonstrates financial need.
const FinancialNeedIncomeThreshold = 50000

// Student is an applicant profile. Ethnicity holds unique tags in no particular order.
type Student struct {
	ID                    string    `db:"id" json:"id"`
	Name                  string    `db:"name" json:"name"`
	Email                 string    `db:"email" json:"email"`
	GPA                   float64   `db:"gpa" json:"gpa"`
	EnrollmentStatus      string    `db:"enrollment_status" json:"enrollment_status"`
	CitizenshipStatus     string    `db:"citizenship_status" json:"citizenship_status"`
	Major                 *string   `db:"major" json:"major"`
	GraduationYear        *int      `db:"graduation_year" json:"graduation_year"`
	Gender                *string   `db:"gender" json:"gender"`
	HouseholdIncome       *int64    `db:"household_income" json:"household_income,omitempty"`
	FinancialNeed         bool      `db:"financial_need" json:"financial_need"`
	FirstGeneration       bool      `db:"first_generation" json:"first_generation"`
	MilitaryAffiliation   *string   `db:"military_affiliation" json:"military_affiliation"`
	Residency             *string   `db:"residency" json:"residency"`
	CommunityServiceHours *int      `db:"community_service_hours" json:"community_service_hours"`
	State                 *string   `db:"state" json:"state"`
	Ethnicity             []string  `db:"-" json:"ethnicity"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// HasFinancialNeed derives financial need from household income; unknown income means no need.
func HasFinancialNeed(householdIncome *int64) bool {
	return householdIncome != nil && *householdIncome < FinancialNeedIncomeThreshold
}
