// Package render maps an invoice snapshot plus its calculated totals to a
// styled, fixed-width visual document. Rendering is pure and idempotent:
// the same snapshot and totals always produce the same document.
package render

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/format"
)

// paperWidth is the inner width of the rendered document
const paperWidth = 64

// Placeholder text shown for blank optional fields so an empty invoice
// still previews legibly
const (
	placeholderCompany = "Your Company"
	placeholderAddress = "Company Address"
	placeholderClient  = "Client Name"
	placeholderEmail   = "client@email.com"
	placeholderDate    = "Select date"
	placeholderItem    = "Item description"
)

// Render produces the visual document for an invoice snapshot. The layout
// variant is chosen by the invoice's template tag; unrecognized tags render
// with the classic layout.
func Render(inv *domain.Invoice, totals calc.Totals) string {
	styles := stylesFor(domain.ResolveTemplate(inv.Template))

	var b strings.Builder

	b.WriteString(renderHeader(inv, styles))
	b.WriteString("\n\n")
	b.WriteString(renderParties(inv, styles))
	b.WriteString("\n\n")
	b.WriteString(renderItems(inv, styles))
	b.WriteString("\n")
	b.WriteString(renderTotals(inv, totals, styles))

	if inv.Notes != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.sectionLabel.Render("NOTES"))
		b.WriteString("\n")
		b.WriteString(styles.muted.Render(inv.Notes))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(paperWidth, lipgloss.Center,
		styles.muted.Render("Thank you for your business")))

	return styles.paper.Render(b.String())
}

func renderHeader(inv *domain.Invoice, s styleSet) string {
	var left strings.Builder

	if inv.CompanyLogo != "" {
		left.WriteString(s.muted.Render("["+filepath.Base(inv.CompanyLogo)+"]") + "\n")
	}
	left.WriteString(s.companyName.Render(orPlaceholder(inv.CompanyName, placeholderCompany)) + "\n")
	left.WriteString(s.muted.Render(orPlaceholder(inv.CompanyAddress, placeholderAddress)))
	if inv.CompanyWebsite != "" {
		left.WriteString("\n" + s.muted.Render(inv.CompanyWebsite))
	}

	right := s.invoiceLabel.Render("INVOICE") + "\n" + s.muted.Render(inv.InvoiceNumber)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(paperWidth-24).Render(left.String()),
		lipgloss.NewStyle().Width(24).Align(lipgloss.Right).Render(right),
	)
	return s.headerBand.Render(header)
}

func renderParties(inv *domain.Invoice, s styleSet) string {
	var left strings.Builder
	left.WriteString(s.sectionLabel.Render("BILL TO") + "\n")
	left.WriteString(orPlaceholder(inv.ClientName, placeholderClient) + "\n")
	left.WriteString(s.muted.Render(orPlaceholder(inv.ClientEmail, placeholderEmail)))

	var right strings.Builder
	right.WriteString(s.sectionLabel.Render("INVOICE DATE") + "\n")
	right.WriteString(orPlaceholder(format.Date(inv.InvoiceDate), placeholderDate) + "\n")
	right.WriteString(s.sectionLabel.Render("DUE DATE") + "\n")
	right.WriteString(orPlaceholder(format.Date(inv.DueDate), placeholderDate))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(paperWidth/2).Render(left.String()),
		lipgloss.NewStyle().Width(paperWidth/2).Align(lipgloss.Right).Render(right.String()),
	)
}

func renderItems(inv *domain.Invoice, s styleSet) string {
	var b strings.Builder

	header := fmt.Sprintf("%-28s %5s %13s %15s", "DESCRIPTION", "QTY", "PRICE", "TOTAL")
	b.WriteString(s.tableHeader.Render(header) + "\n")
	b.WriteString(s.muted.Render(strings.Repeat("-", paperWidth)) + "\n")

	for _, item := range inv.Items {
		b.WriteString(fmt.Sprintf("%-28s %5d %13s %15s\n",
			truncate(orPlaceholder(item.Name, placeholderItem), 28),
			item.Quantity,
			format.Currency(item.UnitPrice, inv.Currency),
			format.Currency(calc.ItemTotal(item), inv.Currency),
		))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderTotals(inv *domain.Invoice, totals calc.Totals, s styleSet) string {
	var b strings.Builder

	row := func(label, value string) string {
		return fmt.Sprintf("%20s %15s", label, value)
	}

	b.WriteString(row("Subtotal", format.Currency(totals.Subtotal, inv.Currency)) + "\n")
	b.WriteString(row(fmt.Sprintf("Tax (%s%%)", formatRate(inv.TaxRate)),
		format.Currency(totals.Tax, inv.Currency)) + "\n")
	b.WriteString(s.grandTotal.Render(row("Total", format.Currency(totals.Total, inv.Currency))))

	if inv.IsAdvancePayment {
		b.WriteString("\n")
		b.WriteString(row("Advance Paid",
			"-"+format.Currency(inv.AdvancePaymentAmount, inv.Currency)) + "\n")
		b.WriteString(s.grandTotal.Render(row("Amount Due",
			format.Currency(calc.AmountDue(totals.Total, inv.AdvancePaymentAmount), inv.Currency))))
	}

	block := s.totalsBlock.Render(b.String())
	return lipgloss.PlaceHorizontal(paperWidth, lipgloss.Right, block)
}

// formatRate prints a tax rate without trailing zeros ("10", "8.25")
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// truncate shortens a string to maxLen with an ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
