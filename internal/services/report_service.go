package services

import (
	"bytes"
	"fmt"
	"time"

	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"
	"travelplan/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders a per-travel expense summary as a PDF.
type ReportService struct {
	Travels   repositories.Store[models.Travel]
	Expenses  repositories.Store[models.Expense]
	RequestID string
}

// ExpenseReport returns the PDF bytes and a download filename. Fails with
// not-found when the travel does not exist; a travel without expenses still
// produces a report with an empty table.
func (s ReportService) ExpenseReport(travelID int64) ([]byte, string, error) {
	travel, err := s.Travels.Get(travelID)
	if err != nil {
		return nil, "", err
	}
	expenses, err := s.Expenses.List(&repositories.Filter{Field: "travel_id", Values: []int64{travelID}})
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "report", "expense_report",
		fmt.Sprintf("travel_id=%d expenses=%d", travelID, len(expenses)))
	return buildExpenseReportPDF(travel, expenses)
}

func buildExpenseReportPDF(travel models.Travel, expenses []models.Expense) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expense Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "EXPENSE REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Travel    : %s (#%d)", travel.Name, travel.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Dates     : %s - %s", travel.StartDate, travel.EndDate))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	var total int64
	for _, e := range expenses {
		pdf.CellFormat(90, 7, e.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, e.Datetime, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", e.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
		total += e.Amount
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", total), "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("EXPENSES_%d.pdf", travel.ID)
	return buf.Bytes(), filename, nil
}
