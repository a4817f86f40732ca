package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
	"github.com/noah-isme/scholarship-match-api/pkg/export"
)

type matchSourceStub struct {
	resp *dto.StudentMatchesResponse
	err  error
}

func (m matchSourceStub) MatchesWithoutExplanations(context.Context, string) (*dto.StudentMatchesResponse, error) {
	return m.resp, m.err
}

type failingPDF struct{}

func (failingPDF) Render(export.Dataset, string) ([]byte, error) {
	return nil, errors.New("font missing")
}

func sampleMatchesResponse() *dto.StudentMatchesResponse {
	url := "https://example.org/stem"
	return &dto.StudentMatchesResponse{
		StudentID:         "stu_001",
		StudentName:       "Maya Chen",
		TotalMatches:      2,
		TotalPotentialAid: 7500,
		Matches: []dto.Match{
			{
				Scholarship:  dto.ScholarshipSummary{ID: "sch_001", Name: "STEM Excellence", Amount: 5000, Provider: "Tech Foundation", Deadline: "2025-03-15", URL: &url},
				MatchReasons: []string{"GPA requirement met (3.8 >= 3.5)", "Computer Science major alignment"},
			},
			{
				Scholarship:  dto.ScholarshipSummary{ID: "sch_002", Name: "First Gen Futures", Amount: 2500, Provider: "Community Fund", Deadline: "2025-04-01"},
				MatchReasons: []string{"GPA requirement met (3.8 >= 3)"},
			},
		},
	}
}

func newExportServiceForTest(source matchSource) *ExportService {
	svc := NewExportService(source, nil, nil, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, time.February, 3, 4, 5, 6, 0, time.UTC) }
	return svc
}

func TestParseReportFormat(t *testing.T) {
	format, err := ParseReportFormat("")
	require.NoError(t, err)
	assert.Equal(t, ReportFormatCSV, format)

	format, err = ParseReportFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, ReportFormatPDF, format)

	_, err = ParseReportFormat("xlsx")
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedType)
}

func TestExportServiceMatchReportCSV(t *testing.T) {
	svc := newExportServiceForTest(matchSourceStub{resp: sampleMatchesResponse()})

	result, err := svc.MatchReport(context.Background(), "stu_001", ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "matches_stu_001_20250203_040506.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Scholarship ID,Name,Provider,Amount,Deadline,URL,Match Reasons", lines[0])
	assert.Equal(t, "sch_001,STEM Excellence,Tech Foundation,5000,2025-03-15,https://example.org/stem,GPA requirement met (3.8 >= 3.5); Computer Science major alignment", lines[1])
	assert.Equal(t, "sch_002,First Gen Futures,Community Fund,2500,2025-04-01,,GPA requirement met (3.8 >= 3)", lines[2])
}

func TestExportServiceMatchReportPDF(t *testing.T) {
	svc := newExportServiceForTest(matchSourceStub{resp: sampleMatchesResponse()})

	result, err := svc.MatchReport(context.Background(), "stu_001", ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Body), "%PDF"))
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
}

func TestExportServicePropagatesNotFound(t *testing.T) {
	notFound := appErrors.Clone(appErrors.ErrNotFound, "student not found")
	svc := newExportServiceForTest(matchSourceStub{err: notFound})

	_, err := svc.MatchReport(context.Background(), "stu_404", ReportFormatCSV)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestExportServiceRenderFailureIsInternal(t *testing.T) {
	svc := NewExportService(matchSourceStub{resp: sampleMatchesResponse()}, nil, failingPDF{}, nil)

	_, err := svc.MatchReport(context.Background(), "stu_001", ReportFormatPDF)
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}
