package domain

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// dateLayout is the calendar-date format used for invoice and due dates
const dateLayout = "2006-01-02"

// LineItem is one billable row on an invoice
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// Invoice is the full record of a billable transaction edited in one session.
// Derived totals (subtotal, tax, total) are never stored here; they are
// recomputed from Items and TaxRate on every read.
type Invoice struct {
	ID                   string     `json:"id"`
	CompanyName          string     `json:"companyName"`
	CompanyAddress       string     `json:"companyAddress"`
	CompanyLogo          string     `json:"companyLogo"`
	CompanyWebsite       string     `json:"companyWebsite"`
	ClientName           string     `json:"clientName"`
	ClientEmail          string     `json:"clientEmail"`
	InvoiceNumber        string     `json:"invoiceNumber"`
	InvoiceDate          string     `json:"invoiceDate"`
	DueDate              string     `json:"dueDate"`
	Items                []LineItem `json:"items"`
	TaxRate              float64    `json:"taxRate"`
	Notes                string     `json:"notes"`
	Currency             string     `json:"currency"`
	Template             Template   `json:"template"`
	IsAdvancePayment     bool       `json:"isAdvancePayment"`
	AdvancePaymentAmount float64    `json:"advancePaymentAmount"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// NewLineItem creates an empty line item with a fresh id.
// Quantity starts at 1 so the row totals to zero until priced.
func NewLineItem() LineItem {
	return LineItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	}
}

// NewInvoice creates a blank invoice with generated identity fields,
// today's date, a due date 30 days out, and a single empty line item.
func NewInvoice(currency string, template Template) *Invoice {
	now := time.Now()
	return &Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: GenerateInvoiceNumber(),
		InvoiceDate:   now.Format(dateLayout),
		DueDate:       now.AddDate(0, 0, 30).Format(dateLayout),
		Items:         []LineItem{NewLineItem()},
		Currency:      currency,
		Template:      template,
		CreatedAt:     now,
	}
}

// GenerateInvoiceNumber returns a unique number like "INV-MBX4K2J1-7QGZ":
// prefix, millisecond timestamp in base36, and a short random suffix.
func GenerateInvoiceNumber() string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return "INV-" + timestamp + "-" + string(suffix)
}

// Clone returns a deep copy of the invoice. Saves and exports operate on a
// clone taken at invocation time so edits made while an operation is in
// flight never tear the output.
func (i *Invoice) Clone() *Invoice {
	c := *i
	c.Items = make([]LineItem, len(i.Items))
	copy(c.Items, i.Items)
	return &c
}

// AddItem appends a fresh empty line item and returns it
func (i *Invoice) AddItem() LineItem {
	item := NewLineItem()
	i.Items = append(i.Items, item)
	return item
}

// RemoveItem removes the line item with the given id. The last remaining
// item is never removed; the return value reports whether a removal happened.
func (i *Invoice) RemoveItem(id string) bool {
	if len(i.Items) <= 1 {
		return false
	}
	for idx, item := range i.Items {
		if item.ID == id {
			i.Items = append(i.Items[:idx], i.Items[idx+1:]...)
			return true
		}
	}
	return false
}
