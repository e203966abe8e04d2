package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andy/billfold/internal/db"
	"github.com/andy/billfold/internal/domain"
)

// timeLayout is the RFC3339 format for storing times in SQLite
const timeLayout = time.RFC3339

// InvoiceRepo is a SQLite implementation of InvoiceRepository. Invoice
// records are stored as JSON in a single flat table keyed by id.
type InvoiceRepo struct {
	db *db.DB
}

// NewInvoiceRepo creates a new InvoiceRepo
func NewInvoiceRepo(database *db.DB) *InvoiceRepo {
	return &InvoiceRepo{db: database}
}

// Save upserts an invoice: the existing record with the same id is
// replaced, otherwise a new row is inserted
func (r *InvoiceRepo) Save(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.ID == "" {
		return errors.New("invoice id is required")
	}

	data, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("failed to encode invoice: %w", err)
	}

	query := `
		INSERT INTO invoices (id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, invoice.ID, string(data), time.Now().Format(timeLayout)); err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	return nil
}

// GetByID retrieves a saved invoice by id. Returns nil when no record exists.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var data string

	err := r.db.QueryRowContext(ctx, "SELECT data FROM invoices WHERE id = ?", id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return decodeInvoice(data)
}

// List retrieves all saved invoices, most recently updated first
func (r *InvoiceRepo) List(ctx context.Context) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT data FROM invoices ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}

		invoice, err := decodeInvoice(data)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, nil
}

// Delete removes a saved invoice by id
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("invoice not found")
	}

	return nil
}

// decodeInvoice parses a stored JSON record
func decodeInvoice(data string) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}
	if err := json.Unmarshal([]byte(data), invoice); err != nil {
		return nil, fmt.Errorf("failed to decode invoice record: %w", err)
	}
	return invoice, nil
}
