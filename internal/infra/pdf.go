package infra

// pdf.go — Quote document generation using go-pdf/fpdf.
// Produces an A4 quote with:
//   - Company / quote number header
//   - Client and project block
//   - Line item table (name, quantity, unit price, total)
//   - Additional cost rows
//   - Discount / increase lines and bold total
//   - Payment terms and validity footer
//
// The output file is saved to storagePath/quote_{number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quotecraft/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateQuotePDF renders a quote to PDF. storagePath is created if needed.
// Returns the absolute path to the generated file.
func GenerateQuotePDF(q *model.Quote, companyName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("quote_%s.pdf", strings.ReplaceAll(q.QuoteNumber, "/", "_"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	if companyName == "" {
		companyName = "Quote"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, companyName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, "Quote "+q.QuoteNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, q.CreatedAt.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// ── Client / project block ───────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Prepared for", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []*string{q.ClientName, q.ProjectName, q.ProjectAddress, q.ClientPhone, q.ClientEmail} {
		if line != nil && *line != "" {
			pdf.CellFormat(contentW, 5, *line, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.44 // name
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.22 // total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Unit price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range q.Items {
		name := item.Name
		if name == "" {
			name = item.CategoryName
		}
		if len(name) > 48 {
			name = name[:47] + "…"
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, trimFloat(item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("%.2f", item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, fmt.Sprintf("%.2f", item.TotalPrice), "", 1, "R", false, 0, "")
	}

	for _, extra := range q.AdditionalCosts {
		name := extra.Name
		if len(name) > 48 {
			name = name[:47] + "…"
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "", "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, fmt.Sprintf("%.2f", extra.Cost), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	if !q.PriceIncreasePercent.IsZero() {
		pdf.CellFormat(col1+col2+col3, 6, "Price adjustment:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, "+"+q.PriceIncreasePercent.StringFixed(1)+"%", "", 1, "R", false, 0, "")
	}
	if !q.DiscountPercent.IsZero() {
		pdf.CellFormat(col1+col2+col3, 6, "Discount:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, "-"+q.DiscountPercent.StringFixed(1)+"%", "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, q.TotalPrice.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Payment terms ────────────────────────────────────────────────────────
	if len(q.PaymentTerms) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Payment schedule", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, term := range q.PaymentTerms {
			label := fmt.Sprintf("%s — %.0f%%", term.Label, term.Percent)
			if term.DueOn != "" {
				label += " (" + term.DueOn + ")"
			}
			pdf.CellFormat(contentW, 5, label, "", 1, "L", false, 0, "")
		}
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	if q.ValidUntil != nil {
		pdf.CellFormat(contentW, 5, "Valid until "+q.ValidUntil.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	if q.Notes != nil && *q.Notes != "" {
		pdf.MultiCell(contentW, 4, *q.Notes, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// trimFloat formats a quantity without trailing zeros (2 → "2", 2.5 → "2.5").
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
