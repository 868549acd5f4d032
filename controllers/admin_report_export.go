package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
)

// reportWindow resolves the ?period= query into a date range
func reportWindow(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return end.AddDate(0, 0, -7), end, true
	case "month":
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return end.AddDate(0, -1, 0), end, true
	}
	return time.Time{}, time.Time{}, false
}

func fetchReportTransactions(start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := config.DB.
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

// DownloadTransactionReportExcel exports the ledger for a period as Excel
func DownloadTransactionReportExcel(c *gin.Context) {
	period := c.DefaultQuery("period", "day")
	start, end, ok := reportWindow(period)
	if !ok {
		utils.BadRequest(c, "Period must be day, week, or month")
		return
	}

	transactions, err := fetchReportTransactions(start, end)
	if err != nil {
		utils.LogError("Failed to fetch transactions for report: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.LogDebug("Retrieved %d transactions for Excel report", len(transactions))

	totals := map[string]float64{}
	for _, t := range transactions {
		totals[t.Type] += t.Amount
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transaction Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("WEALTHNEST - Transaction Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + start.Format("2006-01-02") + " to " + end.AddDate(0, 0, -1).Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "User ID", "Type", "Amount", "Status", "Description", "Reference", "Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, t := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(t.ID))
		row.AddCell().SetInt(int(t.UserID))
		row.AddCell().SetString(t.Type)
		row.AddCell().SetFloat(t.Amount)
		row.AddCell().SetString(t.Status)
		row.AddCell().SetString(t.Description)
		row.AddCell().SetString(t.ReferenceID)
		row.AddCell().SetString(t.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	sheet.AddRow() // spacing
	summaryHeader := sheet.AddRow()
	summaryHeader.AddCell().SetString("Totals by type")
	for txType, total := range totals {
		row := sheet.AddRow()
		row.AddCell().SetString(txType)
		row.AddCell().SetFloat(total)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions-%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel report: %v", err)
	}
}

// DownloadTransactionReportPDF exports the ledger for a period as PDF
func DownloadTransactionReportPDF(c *gin.Context) {
	period := c.DefaultQuery("period", "day")
	start, end, ok := reportWindow(period)
	if !ok {
		utils.BadRequest(c, "Period must be day, week, or month")
		return
	}

	transactions, err := fetchReportTransactions(start, end)
	if err != nil {
		utils.LogError("Failed to fetch transactions for report: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.LogDebug("Retrieved %d transactions for PDF report", len(transactions))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "WEALTHNEST - Transaction Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period)+" | "+start.Format("2006-01-02")+" to "+end.AddDate(0, 0, -1).Format("2006-01-02"))
	pdf.Ln(12)

	headers := []string{"ID", "User", "Type", "Amount", "Status", "Reference", "Date"}
	widths := []float64{15, 15, 35, 25, 25, 60, 40}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, t := range transactions {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", t.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", t.UserID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, t.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f", t.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, t.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, t.ReferenceID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 6, t.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions-%s.pdf", period))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF report: %v", err)
	}
}
