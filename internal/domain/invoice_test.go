package domain

import (
	"strings"
	"testing"
)

func TestNewInvoice_Defaults(t *testing.T) {
	inv := NewInvoice("EUR", TemplateModern)

	if inv.ID == "" {
		t.Error("expected generated ID")
	}
	if !strings.HasPrefix(inv.InvoiceNumber, "INV-") {
		t.Errorf("InvoiceNumber = %q, want INV- prefix", inv.InvoiceNumber)
	}
	if len(inv.Items) != 1 {
		t.Fatalf("expected 1 starter item, got %d", len(inv.Items))
	}
	if inv.Items[0].Quantity != 1 {
		t.Errorf("starter item quantity = %d, want 1", inv.Items[0].Quantity)
	}
	if inv.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", inv.Currency)
	}
	if inv.Template != TemplateModern {
		t.Errorf("Template = %q, want modern", inv.Template)
	}
	if inv.InvoiceDate == "" || inv.DueDate == "" {
		t.Error("expected invoice and due dates to be set")
	}
}

func TestGenerateInvoiceNumber_Format(t *testing.T) {
	num := GenerateInvoiceNumber()

	parts := strings.Split(num, "-")
	if len(parts) != 3 {
		t.Fatalf("number %q should have 3 dash-separated parts", num)
	}
	if parts[0] != "INV" {
		t.Errorf("prefix = %q, want INV", parts[0])
	}
	if len(parts[2]) != 4 {
		t.Errorf("random suffix %q should be 4 chars", parts[2])
	}
	if num != strings.ToUpper(num) {
		t.Errorf("number %q should be upper case", num)
	}
}

func TestGenerateInvoiceNumber_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		num := GenerateInvoiceNumber()
		if seen[num] {
			t.Fatalf("duplicate invoice number %q", num)
		}
		seen[num] = true
	}
}

func TestClone_IndependentItems(t *testing.T) {
	inv := NewInvoice("USD", TemplateClassic)
	inv.Items[0].Name = "Consulting"

	clone := inv.Clone()
	clone.Items[0].Name = "Changed"
	clone.ClientName = "New Client"

	if inv.Items[0].Name != "Consulting" {
		t.Error("mutating clone items leaked into original")
	}
	if inv.ClientName == "New Client" {
		t.Error("mutating clone fields leaked into original")
	}
}

func TestAddItem(t *testing.T) {
	inv := NewInvoice("USD", TemplateClassic)
	item := inv.AddItem()

	if len(inv.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(inv.Items))
	}
	if item.ID == "" {
		t.Error("new item should have an id")
	}
	if item.ID == inv.Items[0].ID {
		t.Error("new item id should differ from existing item")
	}
}

func TestRemoveItem(t *testing.T) {
	inv := NewInvoice("USD", TemplateClassic)
	second := inv.AddItem()

	if !inv.RemoveItem(second.ID) {
		t.Fatal("expected removal to succeed")
	}
	if len(inv.Items) != 1 {
		t.Errorf("expected 1 item after removal, got %d", len(inv.Items))
	}
}

func TestRemoveItem_KeepsLastRow(t *testing.T) {
	inv := NewInvoice("USD", TemplateClassic)

	if inv.RemoveItem(inv.Items[0].ID) {
		t.Error("last remaining item must not be removable")
	}
	if len(inv.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(inv.Items))
	}
}

func TestRemoveItem_UnknownID(t *testing.T) {
	inv := NewInvoice("USD", TemplateClassic)
	inv.AddItem()

	if inv.RemoveItem("no-such-id") {
		t.Error("removal of unknown id should report false")
	}
	if len(inv.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(inv.Items))
	}
}

func TestCurrencyByCode_KnownAndFallback(t *testing.T) {
	jpy := CurrencyByCode("JPY")
	if jpy.Symbol != "¥" || jpy.Decimals != 0 {
		t.Errorf("JPY = %+v, want ¥ with 0 decimals", jpy)
	}

	unknown := CurrencyByCode("ZZZ")
	if unknown.Code != DefaultCurrencyCode {
		t.Errorf("unknown code resolved to %q, want %q", unknown.Code, DefaultCurrencyCode)
	}
}

func TestNextCurrencyCode_Cycles(t *testing.T) {
	start := Currencies[0].Code
	code := start
	for range Currencies {
		code = NextCurrencyCode(code)
	}
	if code != start {
		t.Errorf("cycling through all currencies should return to %q, got %q", start, code)
	}
}

func TestResolveTemplate_Fallback(t *testing.T) {
	if got := ResolveTemplate(TemplateMinimal); got != TemplateMinimal {
		t.Errorf("known template resolved to %q", got)
	}
	if got := ResolveTemplate(Template("fancy")); got != TemplateClassic {
		t.Errorf("unknown template resolved to %q, want classic", got)
	}
	if got := ResolveTemplate(Template("")); got != TemplateClassic {
		t.Errorf("empty template resolved to %q, want classic", got)
	}
}

func TestNextTemplate_Cycles(t *testing.T) {
	got := NextTemplate(TemplateClassic)
	if got != TemplateModern {
		t.Errorf("NextTemplate(classic) = %q, want modern", got)
	}
	if NextTemplate(TemplateMinimal) != TemplateClassic {
		t.Error("NextTemplate should wrap around to classic")
	}
}
