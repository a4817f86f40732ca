package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
	"github.com/noah-isme/scholarship-match-api/pkg/export"
)

// ReportFormat enumerates downloadable match report encodings.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

var (
	matchReportHeaders = []string{"Scholarship ID", "Name", "Provider", "Amount", "Deadline", "URL", "Match Reasons"}
	matchReportWidths  = []float64{1.1, 2, 1.6, 0.8, 1, 2, 3.5}
)

type matchSource interface {
	MatchesWithoutExplanations(ctx context.Context, studentID string) (*dto.StudentMatchesResponse, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered report ready to stream.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders a student's matches as a downloadable report.
type ExportService struct {
	matches matchSource
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(matches matchSource, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{matches: matches, csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// ParseReportFormat validates a requested format; empty means CSV.
func ParseReportFormat(raw string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ReportFormatCSV:
		return ReportFormatCSV, nil
	case ReportFormatPDF:
		return ReportFormatPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrUnsupportedType, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// MatchReport renders the student's matches. Explanations are not included.
func (s *ExportService) MatchReport(ctx context.Context, studentID string, format ReportFormat) (*ExportResult, error) {
	resp, err := s.matches.MatchesWithoutExplanations(ctx, studentID)
	if err != nil {
		return nil, err
	}
	dataset := buildMatchDataset(resp)

	var (
		body        []byte
		contentType string
	)
	switch format {
	case ReportFormatCSV:
		body, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ReportFormatPDF:
		title := fmt.Sprintf("Scholarship matches for %s", resp.StudentName)
		body, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedType, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		s.logger.Error("render match report", zap.String("student_id", studentID), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	return &ExportResult{
		Filename:    buildReportFilename(resp.StudentID, format, s.now()),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func buildMatchDataset(resp *dto.StudentMatchesResponse) export.Dataset {
	rows := make([]map[string]string, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		url := ""
		if match.Scholarship.URL != nil {
			url = *match.Scholarship.URL
		}
		rows = append(rows, map[string]string{
			"Scholarship ID": match.Scholarship.ID,
			"Name":           match.Scholarship.Name,
			"Provider":       match.Scholarship.Provider,
			"Amount":         strconv.FormatInt(match.Scholarship.Amount, 10),
			"Deadline":       match.Scholarship.Deadline,
			"URL":            url,
			"Match Reasons":  strings.Join(match.MatchReasons, "; "),
		})
	}
	return export.Dataset{Headers: matchReportHeaders, Rows: rows, Widths: matchReportWidths}
}

func buildReportFilename(studentID string, format ReportFormat, at time.Time) string {
	return fmt.Sprintf("matches_%s_%s.%s", sanitizeFilename(studentID), at.UTC().Format("20060102_150405"), format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
