package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-activity-api/internal/models"
	"github.com/noah-isme/teacher-activity-api/internal/repository"
	appErrors "github.com/noah-isme/teacher-activity-api/pkg/errors"
	"github.com/noah-isme/teacher-activity-api/pkg/export"
)

// Export formats accepted by the activity export endpoint.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var exportColumns = []string{"Teacher ID", "Teacher", "Grade", "Subject", "Activity Type", "Created At"}

// ExportFile is a rendered export ready to be served as a download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders filtered activity views into downloadable files.
type ExportService struct {
	store  *repository.ActivityStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an export service.
func NewExportService(store *repository.ActivityStore, logger *zap.Logger) *ExportService {
	return &ExportService{
		store:  store,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
		now:    time.Now,
	}
}

// Render produces the filtered activity list in the requested format.
func (s *ExportService) Render(filter models.ActivityFilter, format string) (*ExportFile, error) {
	table := export.Table{
		Title:   "Teacher Activities",
		Columns: exportColumns,
	}
	for _, record := range FilterActivities(s.store.All(), filter) {
		table.Rows = append(table.Rows, []string{
			record.TeacherID,
			record.TeacherName,
			strconv.Itoa(record.Grade),
			record.Subject,
			record.ActivityType,
			record.CreatedAt,
		})
	}

	stamp := s.now().UTC().Format("20060102-150405")
	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, fmt.Errorf("render csv export: %w", err)
		}
		return &ExportFile{
			Filename:    "activities-" + stamp + ".csv",
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(table)
		if err != nil {
			return nil, fmt.Errorf("render pdf export: %w", err)
		}
		return &ExportFile{
			Filename:    "activities-" + stamp + ".pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
