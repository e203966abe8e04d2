package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
)

// mock implementations
type mockInvoiceRepo struct {
	invoices map[string]*domain.Invoice
	order    []string
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (m *mockInvoiceRepo) Save(ctx context.Context, invoice *domain.Invoice) error {
	if _, exists := m.invoices[invoice.ID]; !exists {
		m.order = append(m.order, invoice.ID)
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, nil
}

func (m *mockInvoiceRepo) List(ctx context.Context) ([]*domain.Invoice, error) {
	out := make([]*domain.Invoice, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.invoices[id])
	}
	return out, nil
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.invoices[id]; !ok {
		return errors.New("invoice not found")
	}
	delete(m.invoices, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockExporter struct {
	exported *domain.Invoice
	totals   calc.Totals
	printed  *domain.Invoice
	err      error
}

func (m *mockExporter) ExportPDF(invoice *domain.Invoice, totals calc.Totals) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.exported = invoice
	m.totals = totals
	return "/tmp/" + invoice.InvoiceNumber + ".pdf", nil
}

func (m *mockExporter) Print(invoice *domain.Invoice, totals calc.Totals) error {
	if m.err != nil {
		return m.err
	}
	m.printed = invoice
	m.totals = totals
	return nil
}

func TestSave_UpsertKeepsOneRecordPerID(t *testing.T) {
	ctx := context.Background()
	repo := newMockInvoiceRepo()
	svc := NewInvoiceService(repo, &mockExporter{})

	inv := domain.NewInvoice("USD", domain.TemplateClassic)
	inv.CompanyName = "First Name"

	if err := svc.Save(ctx, inv); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	inv.CompanyName = "Second Name"
	if err := svc.Save(ctx, inv); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if len(repo.invoices) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.invoices))
	}
	if got := repo.invoices[inv.ID].CompanyName; got != "Second Name" {
		t.Errorf("stored CompanyName = %q, want %q", got, "Second Name")
	}
}

func TestSave_StoresSnapshotNotLiveInvoice(t *testing.T) {
	ctx := context.Background()
	repo := newMockInvoiceRepo()
	svc := NewInvoiceService(repo, &mockExporter{})

	inv := domain.NewInvoice("USD", domain.TemplateClassic)
	inv.ClientName = "Original Client"

	if err := svc.Save(ctx, inv); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Edits after the save must not reach the stored record
	inv.ClientName = "Edited Client"
	inv.Items[0].UnitPrice = 999

	stored := repo.invoices[inv.ID]
	if stored.ClientName != "Original Client" {
		t.Errorf("stored ClientName = %q, want %q", stored.ClientName, "Original Client")
	}
	if stored.Items[0].UnitPrice == 999 {
		t.Error("stored items mutated through the live invoice")
	}
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewInvoiceService(newMockInvoiceRepo(), &mockExporter{})

	_, err := svc.Get(ctx, "missing-id")
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Errorf("Get error = %v, want ErrInvoiceNotFound", err)
	}
}

func TestExportPDF_ComputesTotalsFromSnapshot(t *testing.T) {
	ctx := context.Background()
	exporter := &mockExporter{}
	svc := NewInvoiceService(newMockInvoiceRepo(), exporter)

	inv := domain.NewInvoice("USD", domain.TemplateClassic)
	inv.Items = []domain.LineItem{{ID: "li-1", Name: "Work", Quantity: 2, UnitPrice: 50}}
	inv.TaxRate = 10

	path, err := svc.ExportPDF(ctx, inv)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if path != "/tmp/"+inv.InvoiceNumber+".pdf" {
		t.Errorf("path = %q, want invoice number based file name", path)
	}
	if exporter.totals.Total != 110 {
		t.Errorf("exported Total = %v, want 110", exporter.totals.Total)
	}
	if exporter.exported == inv {
		t.Error("exporter received the live invoice, want a snapshot")
	}
}

func TestExportPDF_Error(t *testing.T) {
	ctx := context.Background()
	exporter := &mockExporter{err: errors.New("disk full")}
	svc := NewInvoiceService(newMockInvoiceRepo(), exporter)

	inv := domain.NewInvoice("USD", domain.TemplateClassic)
	if _, err := svc.ExportPDF(ctx, inv); err == nil {
		t.Error("expected error from failing exporter")
	}
}

func TestPrint_UsesSnapshot(t *testing.T) {
	ctx := context.Background()
	exporter := &mockExporter{}
	svc := NewInvoiceService(newMockInvoiceRepo(), exporter)

	inv := domain.NewInvoice("USD", domain.TemplateClassic)
	if err := svc.Print(ctx, inv); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if exporter.printed == nil {
		t.Fatal("exporter did not receive the invoice")
	}
	if exporter.printed == inv {
		t.Error("exporter received the live invoice, want a snapshot")
	}
}
