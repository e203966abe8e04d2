package repository

import (
	"context"

	"github.com/andy/billfold/internal/domain"
)

// InvoiceRepository manages the saved-invoice collection. Save has upsert
// semantics keyed by invoice id: replace the record if the id exists,
// append otherwise. An id is never duplicated.
type InvoiceRepository interface {
	Save(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}
