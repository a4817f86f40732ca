package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	"github.com/noah-isme/scholarship-match-api/internal/service"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
	"github.com/noah-isme/scholarship-match-api/pkg/response"
)

type studentCreator interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentCreatedResponse, error)
}

type studentMatcher interface {
	Matches(ctx context.Context, studentID string) (*dto.StudentMatchesResponse, error)
}

type matchExporter interface {
	MatchReport(ctx context.Context, studentID string, format service.ReportFormat) (*service.ExportResult, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentCreator
	matches  studentMatcher
	exports  matchExporter
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentCreator, matches studentMatcher, exports matchExporter) *StudentHandler {
	return &StudentHandler{students: students, matches: matches, exports: exports}
}

// Create godoc
// @Summary Register a student profile
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Matches godoc
// @Summary List scholarships the student is eligible for
// @Tags Matches
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentMatchesResponse
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/matches [get]
func (h *StudentHandler) Matches(c *gin.Context) {
	result, err := h.matches.Matches(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	// Clients consume this payload unwrapped; errors keep the envelope.
	c.JSON(http.StatusOK, result)
}

// ExportMatches godoc
// @Summary Download the student's matches as CSV or PDF
// @Tags Matches
// @Produce octet-stream
// @Param id path string true "Student ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/matches/export [get]
func (h *StudentHandler) ExportMatches(c *gin.Context) {
	format, err := service.ParseReportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.exports.MatchReport(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, report.Filename, report.ContentType, report.Body)
}
