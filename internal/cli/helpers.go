package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/service"
)

// resolveInvoice looks an invoice up by its record id, then falls back to
// matching the human-facing invoice number.
func resolveInvoice(ctx context.Context, ref string) (*domain.Invoice, error) {
	invoice, err := appInstance.InvoiceService.Get(ctx, ref)
	if err == nil {
		return invoice, nil
	}
	if !errors.Is(err, service.ErrInvoiceNotFound) {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	invoices, err := appInstance.InvoiceService.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	for _, inv := range invoices {
		if inv.InvoiceNumber == ref {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("invoice '%s' not found", ref)
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
