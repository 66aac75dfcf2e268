// Package export renders analytics reports as spreadsheets for download.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
)

// ReportKind selects which report sheet an export request renders.
type ReportKind string

const (
	KindAging       ReportKind = "aging"
	KindFastMovers  ReportKind = "fast_movers"
	KindPerformance ReportKind = "performance"
)

// ParseKind validates a user-supplied report kind.
func ParseKind(raw string) (ReportKind, error) {
	switch ReportKind(raw) {
	case KindAging, KindFastMovers, KindPerformance:
		return ReportKind(raw), nil
	default:
		return "", fmt.Errorf("unknown report kind %q", raw)
	}
}

// Exporter writes report rows into xlsx workbooks. Currency values are
// rounded to 2 places here and nowhere earlier.
type Exporter struct {
	maxRows int
}

// NewExporter caps every sheet at maxRows data rows; zero or negative
// disables the cap.
func NewExporter(maxRows int) *Exporter {
	return &Exporter{maxRows: maxRows}
}

// Filename builds the download name for a report exported at ts.
func Filename(kind ReportKind, ts time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", kind, ts.UTC().Format("20060102_150405"))
}

// Aging writes the aging-stock table to w.
func (e *Exporter) Aging(w io.Writer, report *analytics.AgingReport) error {
	f, sheet := newWorkbook("Aging Stock")
	defer f.Close()

	writeHeader(f, sheet, []string{
		"Product", "Article ID", "Category", "Stock", "Sold Qty",
		"Age (days)", "Bucket", "Severity", "Stock Status", "Inventory Value",
	})

	for i, row := range e.capAging(report.Rows) {
		setRow(f, sheet, i+2, []any{
			row.Name, row.ArticleID, row.CategoryName, row.Stock, row.SoldQuantity,
			row.AgeDays, row.AgingBucket, string(row.AgingSeverity),
			string(row.StockStatus), money(row.InventoryValue),
		})
	}

	return f.Write(w)
}

// FastMovers writes the fast-moving-products table to w.
func (e *Exporter) FastMovers(w io.Writer, report *analytics.FastMoverReport) error {
	f, sheet := newWorkbook("Fast Movers")
	defer f.Close()

	writeHeader(f, sheet, []string{
		"Product", "Article ID", "Category", "Stock", "Total Qty",
		"Sales Value", "Orders", "Velocity (units/day)", "Days of Inventory", "Stock Status",
	})

	rows := report.Rows
	if e.maxRows > 0 && len(rows) > e.maxRows {
		rows = rows[:e.maxRows]
	}
	for i, row := range rows {
		setRow(f, sheet, i+2, []any{
			row.Name, row.ArticleID, row.CategoryName, row.Stock, row.TotalQuantity,
			money(row.TotalSalesValue), row.OrderCount, row.SalesVelocity,
			row.DaysOfInventory, string(row.StockStatus),
		})
	}

	return f.Write(w)
}

// Performance writes the executive performance table to w.
func (e *Exporter) Performance(w io.Writer, report *analytics.PerformanceReport) error {
	f, sheet := newWorkbook("Executive Performance")
	defer f.Close()

	writeHeader(f, sheet, []string{
		"Executive", "Manager", "Total Orders", "Total Revenue", "Last Order", "Tier",
	})

	rows := report.Rows
	if e.maxRows > 0 && len(rows) > e.maxRows {
		rows = rows[:e.maxRows]
	}
	for i, row := range rows {
		lastOrder := ""
		if row.LastOrderAt != nil {
			lastOrder = row.LastOrderAt.UTC().Format(time.RFC3339)
		}
		setRow(f, sheet, i+2, []any{
			row.Name, row.ManagerName, row.TotalOrders,
			money(row.TotalRevenue), lastOrder, string(row.Tier),
		})
	}

	return f.Write(w)
}

func (e *Exporter) capAging(rows []analytics.AgingRow) []analytics.AgingRow {
	if e.maxRows > 0 && len(rows) > e.maxRows {
		return rows[:e.maxRows]
	}
	return rows
}

func newWorkbook(sheet string) (*excelize.File, string) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)
	return f, sheet
}

func writeHeader(f *excelize.File, sheet string, columns []string) {
	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, name)
	}
}

func setRow(f *excelize.File, sheet string, rowIndex int, values []any) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowIndex)
		_ = f.SetCellValue(sheet, cell, value)
	}
}

func money(d decimal.Decimal) float64 {
	v, _ := d.Round(2).Float64()
	return v
}
