package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/format"
)

// InvoicesModel is the saved invoices screen: browse, reopen, export
// and delete previously saved invoices.
type InvoicesModel struct {
	app      *app.App
	invoices []*domain.Invoice
	cursor   int
	loading  bool

	statusMsg string
	err       error
}

type invoicesLoadedMsg struct {
	invoices []*domain.Invoice
	err      error
}

type invoiceDeletedMsg struct {
	err error
}

type invoiceExportedMsg struct {
	path string
	err  error
}

// NewInvoicesModel creates the saved invoices screen
func NewInvoicesModel(a *app.App) tea.Model {
	return &InvoicesModel{app: a, loading: true}
}

func (m *InvoicesModel) Init() tea.Cmd {
	return m.loadInvoices()
}

func (m *InvoicesModel) loadInvoices() tea.Cmd {
	return func() tea.Msg {
		invoices, err := m.app.InvoiceService.List(context.Background())
		return invoicesLoadedMsg{invoices: invoices, err: err}
	}
}

func (m *InvoicesModel) deleteInvoice(id string) tea.Cmd {
	return func() tea.Msg {
		return invoiceDeletedMsg{err: m.app.InvoiceService.Delete(context.Background(), id)}
	}
}

func (m *InvoicesModel) exportInvoice(inv *domain.Invoice) tea.Cmd {
	snapshot := inv.Clone()
	return func() tea.Msg {
		path, err := m.app.InvoiceService.ExportPDF(context.Background(), snapshot)
		return invoiceExportedMsg{path: path, err: err}
	}
}

func (m *InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadInvoices()

	case invoicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.invoices = msg.invoices
		if m.cursor >= len(m.invoices) {
			m.cursor = len(m.invoices) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case invoiceDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = "Invoice deleted"
		return m, m.loadInvoices()

	case invoiceExportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = fmt.Sprintf("PDF saved -> %s", msg.path)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.invoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			if inv := m.selected(); inv != nil {
				return m, func() tea.Msg { return OpenInvoiceMsg{Invoice: inv} }
			}
		case key.Matches(msg, DefaultKeyMap.New):
			inv := m.app.Config.NewInvoice()
			return m, func() tea.Msg { return OpenInvoiceMsg{Invoice: inv} }
		case key.Matches(msg, DefaultKeyMap.Delete):
			if inv := m.selected(); inv != nil {
				return m, m.deleteInvoice(inv.ID)
			}
		case key.Matches(msg, DefaultKeyMap.Export):
			if inv := m.selected(); inv != nil {
				m.statusMsg = "Generating PDF..."
				return m, m.exportInvoice(inv)
			}
		case key.Matches(msg, DefaultKeyMap.Back):
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenBuilder} }
		}
	}
	return m, nil
}

func (m *InvoicesModel) selected() *domain.Invoice {
	if m.cursor < 0 || m.cursor >= len(m.invoices) {
		return nil
	}
	return m.invoices[m.cursor]
}

func (m *InvoicesModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Saved Invoices") + "\n\n")

	if m.loading {
		s.WriteString(subtitleStyle.Render("  Loading invoices...") + "\n")
		return s.String()
	}

	if len(m.invoices) == 0 {
		s.WriteString(subtitleStyle.Render("  No saved invoices yet. Press 'n' to start one.") + "\n")
	} else {
		header := fmt.Sprintf("  %-22s %-22s %-12s %12s", "NUMBER", "CLIENT", "DATE", "TOTAL")
		s.WriteString(subtitleStyle.Render(header) + "\n")

		for i, inv := range m.invoices {
			totals := calc.Compute(inv)
			client := inv.ClientName
			if client == "" {
				client = "(no client)"
			}
			row := fmt.Sprintf("  %-22s %-22s %-12s %12s",
				truncateStr(inv.InvoiceNumber, 22),
				truncateStr(client, 22),
				inv.InvoiceDate,
				format.Currency(totals.Total, inv.Currency),
			)
			if i == m.cursor {
				s.WriteString(selectedStyle.Render(row) + "\n")
			} else {
				s.WriteString(row + "\n")
			}
		}
	}

	if m.statusMsg != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("  Error: %v", m.err)) + "\n")
	}

	s.WriteString("\n" + helpStyle.Render("  enter: edit  n: new  e: export pdf  d: delete  esc: builder"))
	return s.String()
}
