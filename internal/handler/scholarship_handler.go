package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	"github.com/noah-isme/scholarship-match-api/pkg/response"
)

type scholarshipLister interface {
	List(ctx context.Context) (*dto.ScholarshipListResponse, error)
	Requirements(ctx context.Context, scholarshipID string) (*dto.ScholarshipRequirementsResponse, error)
}

// ScholarshipHandler exposes the scholarship catalog.
type ScholarshipHandler struct {
	scholarships scholarshipLister
}

// NewScholarshipHandler constructs ScholarshipHandler.
func NewScholarshipHandler(scholarships scholarshipLister) *ScholarshipHandler {
	return &ScholarshipHandler{scholarships: scholarships}
}

// List godoc
// @Summary List scholarships
// @Tags Scholarships
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /scholarships [get]
func (h *ScholarshipHandler) List(c *gin.Context) {
	result, err := h.scholarships.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Requirements godoc
// @Summary Count allow-list requirements per facet
// @Tags Scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholarships/{id}/requirements [get]
func (h *ScholarshipHandler) Requirements(c *gin.Context) {
	result, err := h.scholarships.Requirements(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
