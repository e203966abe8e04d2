package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/pdf"
	"github.com/andy/billfold/internal/repository"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceService manages saving and exporting invoices. Every operation
// works on a snapshot of the invoice taken at invocation time: edits made
// while a save or export is in flight never affect its output.
type InvoiceService interface {
	// Save persists the invoice (upsert by id)
	Save(ctx context.Context, invoice *domain.Invoice) error

	// Get retrieves a saved invoice by id
	Get(ctx context.Context, id string) (*domain.Invoice, error)

	// List returns all saved invoices, most recently updated first
	List(ctx context.Context) ([]*domain.Invoice, error)

	// Delete removes a saved invoice
	Delete(ctx context.Context, id string) error

	// ExportPDF writes the invoice to a PDF named after its invoice
	// number and returns the file path
	ExportPDF(ctx context.Context, invoice *domain.Invoice) (string, error)

	// Print hands the invoice to the platform print flow
	Print(ctx context.Context, invoice *domain.Invoice) error
}

type invoiceService struct {
	repo     repository.InvoiceRepository
	exporter pdf.Exporter
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo repository.InvoiceRepository, exporter pdf.Exporter) InvoiceService {
	return &invoiceService{
		repo:     repo,
		exporter: exporter,
	}
}

func (s *invoiceService) Save(ctx context.Context, invoice *domain.Invoice) error {
	if err := s.repo.Save(ctx, invoice.Clone()); err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	return nil
}

func (s *invoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

func (s *invoiceService) List(ctx context.Context) ([]*domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *invoiceService) ExportPDF(ctx context.Context, invoice *domain.Invoice) (string, error) {
	// Totals are derived from the snapshot, never read from stored state
	snapshot := invoice.Clone()
	path, err := s.exporter.ExportPDF(snapshot, calc.Compute(snapshot))
	if err != nil {
		return "", fmt.Errorf("export pdf: %w", err)
	}
	return path, nil
}

func (s *invoiceService) Print(ctx context.Context, invoice *domain.Invoice) error {
	snapshot := invoice.Clone()
	if err := s.exporter.Print(snapshot, calc.Compute(snapshot)); err != nil {
		return fmt.Errorf("print invoice: %w", err)
	}
	return nil
}
