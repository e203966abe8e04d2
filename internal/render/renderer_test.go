package render

import (
	"strings"
	"testing"

	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
)

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            "inv-1",
		CompanyName:   "Acme Ltd",
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@example.com",
		InvoiceNumber: "INV-TEST-0001",
		InvoiceDate:   "2026-08-01",
		DueDate:       "2026-08-31",
		Items: []domain.LineItem{
			{ID: "li-1", Name: "Design work", Quantity: 2, UnitPrice: 50},
		},
		TaxRate:  10,
		Currency: "USD",
		Template: domain.TemplateClassic,
	}
}

func renderOf(inv *domain.Invoice) string {
	return Render(inv, calc.Compute(inv))
}

func TestRender_Idempotent(t *testing.T) {
	inv := testInvoice()

	first := renderOf(inv)
	second := renderOf(inv)

	if first != second {
		t.Error("rendering the same snapshot twice produced different output")
	}
}

func TestRender_ContainsCoreContent(t *testing.T) {
	out := renderOf(testInvoice())

	for _, want := range []string{
		"Acme Ltd",
		"Jane Doe",
		"jane@example.com",
		"INV-TEST-0001",
		"Design work",
		"$100.00",
		"$110.00",
		"Thank you for your business",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRender_UnknownTemplateMatchesClassic(t *testing.T) {
	classic := testInvoice()
	unknown := testInvoice()
	unknown.Template = domain.Template("holographic")

	if renderOf(classic) != renderOf(unknown) {
		t.Error("unknown template should render exactly like classic")
	}
}

func TestRender_TemplatesShareContent(t *testing.T) {
	inv := testInvoice()

	for _, tmpl := range domain.Templates {
		inv.Template = tmpl
		out := renderOf(inv)
		if !strings.Contains(out, "Design work") || !strings.Contains(out, "$110.00") {
			t.Errorf("template %q dropped invoice content", tmpl)
		}
	}
}

func TestRender_PlaceholdersForBlankFields(t *testing.T) {
	inv := &domain.Invoice{
		InvoiceNumber: "INV-TEST-0002",
		Items:         []domain.LineItem{{ID: "li-1", Quantity: 1}},
		Currency:      "USD",
	}

	out := renderOf(inv)

	for _, want := range []string{
		"Your Company",
		"Company Address",
		"Client Name",
		"client@email.com",
		"Select date",
		"Item description",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing placeholder %q", want)
		}
	}
}

func TestRender_AdvanceBlockOnlyWhenFlagged(t *testing.T) {
	inv := testInvoice()
	inv.AdvancePaymentAmount = 30

	out := renderOf(inv)
	if strings.Contains(out, "Advance Paid") || strings.Contains(out, "Amount Due") {
		t.Error("advance rows rendered while the flag is off")
	}

	inv.IsAdvancePayment = true
	out = renderOf(inv)
	if !strings.Contains(out, "Advance Paid") || !strings.Contains(out, "Amount Due") {
		t.Error("advance rows missing while the flag is on")
	}
	if !strings.Contains(out, "$80.00") {
		t.Error("amount due should reflect the advance deduction")
	}
}

func TestRender_NotesOnlyWhenPresent(t *testing.T) {
	inv := testInvoice()

	if strings.Contains(renderOf(inv), "NOTES") {
		t.Error("notes section rendered for an empty notes field")
	}

	inv.Notes = "Payment within 14 days."
	out := renderOf(inv)
	if !strings.Contains(out, "NOTES") || !strings.Contains(out, "Payment within 14 days.") {
		t.Error("notes section missing for a non-empty notes field")
	}
}

func TestRender_LogoNameShownWhenSet(t *testing.T) {
	inv := testInvoice()
	inv.CompanyLogo = "/tmp/assets/logo.png"

	if !strings.Contains(renderOf(inv), "logo.png") {
		t.Error("logo file name missing from header")
	}
}
