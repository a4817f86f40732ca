package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

const (
	studentIDPrefix        = "stu_"
	uniqueViolation        = "23505"
	studentEmailConstraint = "students_email_key"
	studentPKeyConstraint  = "students_pkey"
	maxStudentIDAttempts   = 3
)

// ErrDuplicateEmail is returned when a student with the same email already exists.
var ErrDuplicateEmail = errors.New("student email already exists")

var errStudentIDTaken = errors.New("student id taken")

type studentRow struct {
	models.Student
	Ethnicities pq.StringArray `db:"ethnicities"`
}

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db       *sqlx.DB
	observer QueryObserver
	now      func() time.Time
}

// NewStudentRepository constructs a StudentRepository. observer may be nil.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{db: db, observer: observer, now: time.Now}
}

// FindByID loads a student with its ethnicity tags. It returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT s.id, s.name, s.email, s.gpa, s.enrollment_status, s.citizenship_status,
        s.major, s.graduation_year, s.gender, s.household_income, s.financial_need, s.first_generation,
        s.military_affiliation, s.residency, s.community_service_hours, s.state, s.created_at, s.updated_at,
        COALESCE((SELECT array_agg(e.ethnicity ORDER BY e.ethnicity) FROM student_ethnicities e WHERE e.student_id = s.id), '{}') AS ethnicities
        FROM students s
        WHERE s.id = $1`
	start := time.Now()
	var row studentRow
	err := r.db.GetContext(ctx, &row, query, id)
	if r.observer != nil {
		r.observer.ObserveDBQuery("student_find", time.Since(start))
	}
	if err != nil {
		return nil, err
	}
	student := row.Student
	student.Ethnicity = []string(row.Ethnicities)
	return &student, nil
}

// Create inserts the student and its ethnicity tags in one transaction, assigning the next sequential ID.
// A generated ID that loses a race with a concurrent registration is regenerated a few times.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	generated := student.ID == ""
	for attempt := 1; ; attempt++ {
		if generated {
			student.ID = ""
		}
		err := r.create(ctx, student)
		if !errors.Is(err, errStudentIDTaken) {
			return err
		}
		if !generated || attempt >= maxStudentIDAttempts {
			return fmt.Errorf("create student: id %s already exists", student.ID)
		}
	}
}

func (r *StudentRepository) create(ctx context.Context, student *models.Student) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create student: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if student.ID == "" {
		id, err := nextStudentID(ctx, tx)
		if err != nil {
			return err
		}
		student.ID = id
	}
	now := r.now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	const insertStudent = `INSERT INTO students (id, email, name, gpa, enrollment_status, citizenship_status,
        major, graduation_year, gender, household_income, financial_need, first_generation,
        military_affiliation, residency, community_service_hours, state, created_at, updated_at)
        VALUES (:id, :email, :name, :gpa, :enrollment_status, :citizenship_status,
        :major, :graduation_year, :gender, :household_income, :financial_need, :first_generation,
        :military_affiliation, :residency, :community_service_hours, :state, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, insertStudent, student); err != nil {
		switch {
		case isUniqueViolation(err, studentEmailConstraint):
			return ErrDuplicateEmail
		case isUniqueViolation(err, studentPKeyConstraint):
			return errStudentIDTaken
		}
		return fmt.Errorf("create student: %w", err)
	}

	const insertEthnicity = `INSERT INTO student_ethnicities (student_id, ethnicity) VALUES ($1, $2)
        ON CONFLICT (student_id, ethnicity) DO NOTHING`
	for _, ethnicity := range student.Ethnicity {
		if _, err := tx.ExecContext(ctx, insertEthnicity, student.ID, ethnicity); err != nil {
			return fmt.Errorf("create student ethnicity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create student: %w", err)
	}
	return nil
}

// nextStudentID returns the ID after the highest existing stu_NNN, zero padded to three digits.
func nextStudentID(ctx context.Context, tx *sqlx.Tx) (string, error) {
	const query = `SELECT id FROM students WHERE id LIKE 'stu_%'
        ORDER BY CAST(SUBSTRING(id FROM 5) AS INTEGER) DESC LIMIT 1`
	var last string
	if err := tx.GetContext(ctx, &last, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return formatStudentID(1), nil
		}
		return "", fmt.Errorf("generate student id: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, studentIDPrefix))
	if err != nil {
		return formatStudentID(1), nil
	}
	return formatStudentID(n + 1), nil
}

func formatStudentID(n int) string {
	return fmt.Sprintf("%s%03d", studentIDPrefix, n)
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolation && (constraint == "" || pqErr.Constraint == constraint)
}
