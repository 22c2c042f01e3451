package infra

// pdf.go — deal confirmation documents using go-pdf/fpdf.
// A4 single page: header, deal reference and dates, counterparty block,
// product/quantity/price table, total and commission, latest shipment, notes.
// The output file is saved to storagePath/deal_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// money formats a float amount for display. Formatting only — stored values
// are never rounded.
func money(v float64, currency string) string {
	return currency + " " + decimal.NewFromFloat(v).StringFixed(2)
}

// GenerateDealPDF renders a confirmation document for a deal snapshot and
// returns the absolute path of the written file. latest is the most recent
// shipment, nil when the deal has none.
func GenerateDealPDF(deal *model.Deal, clientName, supplierName string, latest *model.Shipment, currency, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(storagePath, fmt.Sprintf("deal_%d.pdf", deal.ID))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 36

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "FancyFoods Manager", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Deal Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Reference ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Deal #%d", deal.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Created "+deal.CreatedAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Stage: "+deal.Stage+"  /  Status: "+deal.Status, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Counterparties ───────────────────────────────────────────────────────
	half := contentW / 2
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(half, 5, "Client", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, "Supplier", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if clientName == "" {
		clientName = "-"
	}
	if supplierName == "" {
		supplierName = "-"
	}
	pdf.CellFormat(half, 5, clientName, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, supplierName, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Deal table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.46
	col2 := contentW * 0.18
	col3 := contentW * 0.18
	col4 := contentW * 0.18

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Tons", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 6, "Price/Ton", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1, 6, deal.Product, "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, fmt.Sprintf("%g", deal.Quantity), "", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 6, money(deal.PricePerTon, currency), "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, money(deal.TotalValue, currency), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL VALUE:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, money(deal.TotalValue, currency), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1+col2+col3, 6, fmt.Sprintf("Commission (%g%%):", deal.CommissionRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, money(deal.Commission, currency), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// ── Latest shipment ──────────────────────────────────────────────────────
	if latest != nil {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 6, "Latest Shipment", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		route := latest.Origin
		if latest.Destination != "" {
			route += " to " + latest.Destination
		}
		pdf.CellFormat(contentW, 5, fmt.Sprintf("%s (%s) %s", latest.Carrier, latest.Status, route), "", 1, "L", false, 0, "")
		if latest.TrackingRef != "" {
			pdf.CellFormat(contentW, 5, "Tracking: "+latest.TrackingRef, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	// ── Notes ────────────────────────────────────────────────────────────────
	if deal.Notes != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 6, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 5, deal.Notes, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
