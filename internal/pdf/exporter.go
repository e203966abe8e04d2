// Package pdf is the export adapter: it turns an invoice snapshot into a
// single-page A4 document on disk and hands it to the platform print
// spooler on request. A failed export never touches invoice state; the
// caller reports the error and may retry.
package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/format"
)

// Exporter is the interface the service layer depends on
type Exporter interface {
	// ExportPDF writes the invoice as a PDF named after its invoice
	// number and returns the file path
	ExportPDF(inv *domain.Invoice, totals calc.Totals) (string, error)

	// Print renders the invoice and hands it to the system print spooler
	Print(inv *domain.Invoice, totals calc.Totals) error
}

// Generator renders invoices with gofpdf
type Generator struct {
	outputDir string
}

// NewGenerator creates a Generator writing into outputDir
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

func (g *Generator) ExportPDF(inv *domain.Invoice, totals calc.Totals) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(g.outputDir, inv.InvoiceNumber+".pdf")
	if err := g.writePDF(inv, totals, path); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Generator) Print(inv *domain.Invoice, totals calc.Totals) error {
	spooler, err := findSpooler()
	if err != nil {
		return err
	}

	tmp, err := os.MkdirTemp("", "billfold-print-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	path := filepath.Join(tmp, inv.InvoiceNumber+".pdf")
	if err := g.writePDF(inv, totals, path); err != nil {
		return err
	}

	if out, err := exec.Command(spooler, path).CombinedOutput(); err != nil {
		return fmt.Errorf("print via %s: %v: %s", spooler, err, out)
	}
	return nil
}

// findSpooler locates the platform print command
func findSpooler() (string, error) {
	for _, cmd := range []string{"lp", "lpr"} {
		if path, err := exec.LookPath(cmd); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no print spooler found (need lp or lpr)")
}

// writePDF draws the same content blocks as the live preview onto a
// single A4 page
func (g *Generator) writePDF(inv *domain.Invoice, totals calc.Totals, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 30

	money := func(amount float64) string {
		return tr(format.Currency(amount, inv.Currency))
	}

	// Company block, logo first when the file exists
	if inv.CompanyLogo != "" {
		if _, err := os.Stat(inv.CompanyLogo); err == nil {
			opts := gofpdf.ImageOptions{ReadDpi: true}
			pdf.ImageOptions(inv.CompanyLogo, 15, 15, 24, 0, false, opts, 0, "")
			pdf.SetY(42)
		}
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(contentWidth-60, 10, tr(orDefault(inv.CompanyName, "Your Company")))

	// INVOICE label and number on the right
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(60, 10, "INVOICE", "", 1, "R", false, 0, "")
	headerY := pdf.GetY()
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth, 5, tr(inv.InvoiceNumber), "", 1, "R", false, 0, "")

	pdf.SetY(headerY)
	pdf.MultiCell(contentWidth-60, 5, tr(orDefault(inv.CompanyAddress, "Company Address")), "", "L", false)
	if inv.CompanyWebsite != "" {
		pdf.Cell(contentWidth, 5, tr(inv.CompanyWebsite))
		pdf.Ln(5)
	}
	pdf.Ln(8)

	// Bill-to on the left, dates on the right
	billY := pdf.GetY()
	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(contentWidth/2, 5, "BILL TO")
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(contentWidth/2, 5, tr(orDefault(inv.ClientName, "Client Name")))
	pdf.Ln(5)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(contentWidth/2, 5, tr(orDefault(inv.ClientEmail, "client@email.com")))

	pdf.SetXY(15+contentWidth/2, billY)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(contentWidth/2, 5, "INVOICE DATE", "", 2, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(contentWidth/2, 5, tr(orDefault(format.Date(inv.InvoiceDate), "Select date")), "", 2, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth/2, 5, "DUE DATE", "", 2, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(contentWidth/2, 5, tr(orDefault(format.Date(inv.DueDate), "Select date")), "", 2, "R", false, 0, "")
	pdf.Ln(10)

	// Items table
	descWidth := contentWidth - 70
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(descWidth, 7, "DESCRIPTION", "B", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, "QTY", "B", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "PRICE", "B", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "TOTAL", "B", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(descWidth, 7, tr(orDefault(item.Name, "Item description")), "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, strconv.Itoa(item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, money(item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, money(calc.ItemTotal(item)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Totals, right-aligned
	totalsRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(contentWidth-60, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(30, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, value, "", 1, "R", false, 0, "")
	}

	totalsRow("Subtotal", money(totals.Subtotal), false)
	totalsRow(fmt.Sprintf("Tax (%s%%)", strconv.FormatFloat(inv.TaxRate, 'f', -1, 64)), money(totals.Tax), false)
	totalsRow("Total", money(totals.Total), true)
	if inv.IsAdvancePayment {
		totalsRow("Advance Paid", "-"+money(inv.AdvancePaymentAmount), false)
		totalsRow("Amount Due", money(calc.AmountDue(totals.Total, inv.AdvancePaymentAmount)), true)
	}

	// Notes
	if inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.Cell(contentWidth, 5, "NOTES")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(contentWidth, 4, tr(inv.Notes), "", "L", false)
	}

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(contentWidth, 5, "Thank you for your business", "", 0, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
