package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/earnings"
	"github.com/cliptokk/api/pkg/storage"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Service builds admin XLSX exports of submissions and their earnings.
type Service struct {
	db      *ent.Client
	store   storage.Store
	printer *message.Printer
}

// NewService creates a new export service
func NewService(db *ent.Client, store storage.Store) *Service {
	return &Service{
		db:    db,
		store: store,
		// Earnings are EUR; French locale gives "1 234,56" style figures.
		printer: message.NewPrinter(language.French),
	}
}

// Result describes a generated export file.
type Result struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Rows     int    `json:"rows"`
}

var sheetHeaders = []string{
	"ID", "Clipper", "Mission", "TikTok URL", "Views", "Rate / 1k", "Earnings (EUR)", "Status", "Submitted At", "Updated At",
}

// SubmissionsWorkbook generates an XLSX of all submissions created inside the
// period window, one row per submission, and stores it through the configured
// store. Earnings cells are zero for submissions that were never approved.
func (s *Service) SubmissionsWorkbook(ctx context.Context, period analytics.Period) (*Result, error) {
	query := s.db.Submission.Query().
		WithClipper().
		WithMission().
		Order(ent.Asc(submission.FieldCreatedAt))

	if start := period.WindowStart(time.Now()); !start.IsZero() {
		query = query.Where(submission.CreatedAtGTE(start))
	}

	subs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}

	data, err := s.buildWorkbook(subs)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("submissions-%s-%s.xlsx", period, time.Now().UTC().Format("20060102-150405"))
	url, err := s.store.Put(ctx, "exports/"+filename, data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		return nil, fmt.Errorf("failed to store export: %w", err)
	}

	return &Result{Filename: filename, URL: url, Rows: len(subs)}, nil
}

func (s *Service) buildWorkbook(subs []*ent.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Submissions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range sheetHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, sub := range subs {
		row := rowIdx + 2

		clipper := ""
		if sub.Edges.Clipper != nil {
			clipper = sub.Edges.Clipper.Pseudo
		}
		missionTitle := ""
		rate := 0.0
		if sub.Edges.Mission != nil {
			missionTitle = sub.Edges.Mission.Title
			rate = sub.Edges.Mission.PricePer1kViews
		}

		amount := 0.0
		if sub.Status == submission.StatusApproved || sub.Status == submission.StatusPaid {
			amount = earnings.Amount(sub.ViewsCount, rate)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), sub.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), clipper)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), missionTitle)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), sub.TiktokURL)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), sub.ViewsCount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), s.printer.Sprintf("%.2f", rate))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), s.printer.Sprintf("%.2f", amount))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), string(sub.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), sub.CreatedAt.Format(time.RFC3339))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), sub.UpdatedAt.Format(time.RFC3339))
	}

	for i := range sheetHeaders {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteLocal is a convenience for ad-hoc exports from scripts: it writes the
// workbook straight to a path instead of going through the store.
func (s *Service) WriteLocal(ctx context.Context, period analytics.Period, path string) (int, error) {
	query := s.db.Submission.Query().
		WithClipper().
		WithMission().
		Order(ent.Asc(submission.FieldCreatedAt))

	if start := period.WindowStart(time.Now()); !start.IsZero() {
		query = query.Where(submission.CreatedAtGTE(start))
	}

	subs, err := query.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query submissions: %w", err)
	}

	data, err := s.buildWorkbook(subs)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	return len(subs), nil
}
