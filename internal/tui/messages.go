package tui

import "github.com/andy/billfold/internal/domain"

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// OpenInvoiceMsg tells the builder to load a saved invoice for editing
type OpenInvoiceMsg struct {
	Invoice *domain.Invoice
}
