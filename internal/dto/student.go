package dto

import "time"

// CreateStudentRequest is the registration payload. Financial need is derived, never submitted.
type CreateStudentRequest struct {
	Name                  string   `json:"name" validate:"required"`
	Email                 string   `json:"email" validate:"required,email"`
	GPA                   *float64 `json:"gpa" validate:"required,gte=0,lte=4"`
	EnrollmentStatus      string   `json:"enrollment_status" validate:"required"`
	CitizenshipStatus     string   `json:"citizenship_status" validate:"required"`
	Major                 *string  `json:"major"`
	GraduationYear        *int     `json:"graduation_year" validate:"omitempty,gte=0"`
	Gender                *string  `json:"gender"`
	Ethnicity             []string `json:"ethnicity" validate:"omitempty,dive,required"`
	HouseholdIncome       *int64   `json:"household_income" validate:"omitempty,gte=0"`
	FirstGeneration       bool     `json:"first_generation"`
	MilitaryAffiliation   *string  `json:"military_affiliation"`
	Residency             *string  `json:"residency"`
	CommunityServiceHours *int     `json:"community_service_hours" validate:"omitempty,gte=0"`
	State                 *string  `json:"state"`
}

// StudentCreatedResponse echoes the identity of a newly registered student.
type StudentCreatedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
