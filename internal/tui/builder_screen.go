package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/render"
)

// base form field indices; item fields follow, three per line item
const (
	fieldCompanyName = iota
	fieldCompanyAddress
	fieldCompanyWebsite
	fieldCompanyLogo
	fieldClientName
	fieldClientEmail
	fieldInvoiceDate
	fieldDueDate
	fieldTaxRate
	fieldAdvanceAmount
	fieldNotes
	baseFieldCount
)

// itemFieldCount is the number of inputs per line item (name, qty, price)
const itemFieldCount = 3

// BuilderModel is the invoice editing screen: a form on the left and a
// live preview on the right, re-rendered after every mutation.
type BuilderModel struct {
	app    *app.App
	inv    *domain.Invoice
	fields []textinput.Model

	// Address and notes take free text with line breaks, so they are
	// textareas instead of single-line inputs
	address textarea.Model
	notes   textarea.Model

	focus int

	preview   string
	logoWarn  string
	statusMsg string
	err       error
}

type saveDoneMsg struct {
	number string
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type printDoneMsg struct {
	err error
}

// logoCheckMsg reports whether the logo file could be read
type logoCheckMsg struct {
	path string
	err  error
}

// NewBuilderModel creates the builder screen with a fresh invoice
// pre-filled from config defaults
func NewBuilderModel(a *app.App) tea.Model {
	m := &BuilderModel{app: a}
	m.setInvoice(a.Config.NewInvoice())
	return m
}

// IsCapturingInput returns true: the builder is always a form
func (m *BuilderModel) IsCapturingInput() bool {
	return true
}

func (m *BuilderModel) Init() tea.Cmd {
	return textinput.Blink
}

// setInvoice replaces the editing session with the given invoice and
// rebuilds the form fields from it
func (m *BuilderModel) setInvoice(inv *domain.Invoice) {
	m.inv = inv
	m.initFields()
	m.focus = fieldCompanyName
	m.focusField(m.focus)
	m.rerender()
}

func (m *BuilderModel) initFields() {
	inv := m.inv
	m.fields = make([]textinput.Model, baseFieldCount+itemFieldCount*len(inv.Items))

	newField := func(idx int, placeholder, value string, width, limit int) {
		t := textinput.New()
		t.Placeholder = placeholder
		t.Width = width
		t.CharLimit = limit
		t.SetValue(value)
		m.fields[idx] = t
	}

	newArea := func(placeholder, value string, height, limit int) textarea.Model {
		t := textarea.New()
		t.Placeholder = placeholder
		t.SetWidth(34)
		t.SetHeight(height)
		t.CharLimit = limit
		t.ShowLineNumbers = false
		t.SetValue(value)
		return t
	}

	newField(fieldCompanyName, "Your Company", inv.CompanyName, 34, 100)
	m.address = newArea("Company Address", inv.CompanyAddress, 2, 200)
	newField(fieldCompanyWebsite, "www.example.com", inv.CompanyWebsite, 34, 100)
	newField(fieldCompanyLogo, "/path/to/logo.png", inv.CompanyLogo, 34, 256)
	newField(fieldClientName, "Client Name", inv.ClientName, 34, 100)
	newField(fieldClientEmail, "client@email.com", inv.ClientEmail, 34, 100)
	newField(fieldInvoiceDate, "2026-01-31", inv.InvoiceDate, 14, 10)
	newField(fieldDueDate, "2026-03-02", inv.DueDate, 14, 10)
	newField(fieldTaxRate, "0", formatNum(inv.TaxRate), 8, 6)
	newField(fieldAdvanceAmount, "0.00", formatNum(inv.AdvancePaymentAmount), 12, 12)
	m.notes = newArea("Payment terms, bank details...", inv.Notes, 3, 500)

	for i, item := range inv.Items {
		base := baseFieldCount + i*itemFieldCount
		newField(base, "Item description", item.Name, 24, 100)
		newField(base+1, "1", strconv.Itoa(item.Quantity), 5, 6)
		newField(base+2, "0.00", formatNum(item.UnitPrice), 10, 12)
	}
}

// formatNum prints a float without trailing zeros, and zero as empty-ish "0"
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// syncInvoice copies every form field back into the invoice. Numeric
// fields are coerced: unparsable input becomes 0, silently.
func (m *BuilderModel) syncInvoice() {
	inv := m.inv
	inv.CompanyName = m.fields[fieldCompanyName].Value()
	inv.CompanyAddress = m.address.Value()
	inv.CompanyWebsite = m.fields[fieldCompanyWebsite].Value()
	inv.CompanyLogo = m.fields[fieldCompanyLogo].Value()
	inv.ClientName = m.fields[fieldClientName].Value()
	inv.ClientEmail = m.fields[fieldClientEmail].Value()
	inv.InvoiceDate = m.fields[fieldInvoiceDate].Value()
	inv.DueDate = m.fields[fieldDueDate].Value()
	inv.TaxRate = parseAmount(m.fields[fieldTaxRate].Value())
	inv.AdvancePaymentAmount = parseAmount(m.fields[fieldAdvanceAmount].Value())
	inv.Notes = m.notes.Value()

	for i := range inv.Items {
		base := baseFieldCount + i*itemFieldCount
		inv.Items[i].Name = m.fields[base].Value()
		inv.Items[i].Quantity = parseQuantity(m.fields[base+1].Value())
		inv.Items[i].UnitPrice = parseAmount(m.fields[base+2].Value())
	}
}

// rerender recomputes totals and rebuilds the preview document. Called
// after every invoice mutation so the preview always reflects the latest
// state before any capture is triggered.
func (m *BuilderModel) rerender() {
	m.preview = render.Render(m.inv, calc.Compute(m.inv))
}

func (m *BuilderModel) saveInvoice() tea.Cmd {
	snapshot := m.inv.Clone()
	return func() tea.Msg {
		if err := m.app.InvoiceService.Save(context.Background(), snapshot); err != nil {
			return saveDoneMsg{err: err}
		}
		return saveDoneMsg{number: snapshot.InvoiceNumber}
	}
}

func (m *BuilderModel) exportPDF() tea.Cmd {
	snapshot := m.inv.Clone()
	return func() tea.Msg {
		path, err := m.app.InvoiceService.ExportPDF(context.Background(), snapshot)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *BuilderModel) printInvoice() tea.Cmd {
	snapshot := m.inv.Clone()
	return func() tea.Msg {
		return printDoneMsg{err: m.app.InvoiceService.Print(context.Background(), snapshot)}
	}
}

// checkLogo verifies the logo file is readable, off the update loop
func checkLogo(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logoCheckMsg{path: path}
		}
		_, err := os.Stat(path)
		return logoCheckMsg{path: path, err: err}
	}
}

func (m *BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenInvoiceMsg:
		// Edit a copy so the saved record is untouched until the next save
		m.setInvoice(msg.Invoice.Clone())
		m.statusMsg = fmt.Sprintf("Editing %s", m.inv.InvoiceNumber)
		m.err = nil
		return m, checkLogo(m.inv.CompanyLogo)

	case saveDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = fmt.Sprintf("Saved %s", msg.number)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = fmt.Sprintf("PDF saved -> %s", msg.path)
		return m, nil

	case printDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = "Sent to printer"
		return m, nil

	case logoCheckMsg:
		if msg.path != m.inv.CompanyLogo {
			// Stale check from a previous logo value
			return m, nil
		}
		if msg.err != nil {
			m.logoWarn = fmt.Sprintf("logo not readable: %s", msg.path)
		} else {
			m.logoWarn = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Forward all non-key messages to the focused input (cursor blink)
	return m, m.updateField(m.focus, msg)
}

func (m *BuilderModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenInvoices} }

	case "tab", "down", "enter":
		// Inside a textarea, enter starts a new line and down moves the
		// cursor; only tab leaves the field
		if msg.String() != "tab" && m.isMultiline(m.focus) {
			break
		}
		m.moveFocus(1)
		return m, m.focusField(m.focus)

	case "shift+tab", "up":
		if msg.String() == "up" && m.isMultiline(m.focus) {
			break
		}
		m.moveFocus(-1)
		return m, m.focusField(m.focus)

	case "ctrl+s":
		m.statusMsg = "Saving..."
		return m, m.saveInvoice()

	case "ctrl+d":
		m.statusMsg = "Generating PDF..."
		return m, m.exportPDF()

	case "ctrl+p":
		m.statusMsg = "Printing..."
		return m, m.printInvoice()

	case "ctrl+t":
		m.inv.Template = domain.NextTemplate(m.inv.Template)
		m.rerender()
		return m, nil

	case "ctrl+g":
		m.inv.Currency = domain.NextCurrencyCode(m.inv.Currency)
		m.rerender()
		return m, nil

	case "ctrl+f":
		m.inv.IsAdvancePayment = !m.inv.IsAdvancePayment
		m.rerender()
		return m, nil

	case "ctrl+a":
		m.syncInvoice()
		m.inv.AddItem()
		m.initFields()
		m.focus = baseFieldCount + (len(m.inv.Items)-1)*itemFieldCount
		m.rerender()
		return m, m.focusField(m.focus)

	case "ctrl+x":
		if idx := m.focusedItemIndex(); idx >= 0 {
			m.syncInvoice()
			if !m.inv.RemoveItem(m.inv.Items[idx].ID) {
				m.err = fmt.Errorf("an invoice needs at least one line item")
				return m, nil
			}
			m.initFields()
			if m.focus >= len(m.fields) {
				m.focus = len(m.fields) - 1
			}
			m.rerender()
			return m, m.focusField(m.focus)
		}
		return m, nil

	case "ctrl+n":
		m.setInvoice(m.app.Config.NewInvoice())
		m.statusMsg = "New invoice"
		m.err = nil
		return m, tea.Batch(m.focusField(m.focus), checkLogo(m.inv.CompanyLogo))
	}

	// Regular typing: update the focused field, sync, re-render
	cmd := m.updateField(m.focus, msg)

	logoBefore := m.inv.CompanyLogo
	m.syncInvoice()
	m.rerender()

	if m.focus == fieldCompanyLogo && m.inv.CompanyLogo != logoBefore {
		return m, tea.Batch(cmd, checkLogo(m.inv.CompanyLogo))
	}
	return m, cmd
}

func (m *BuilderModel) moveFocus(delta int) {
	m.blurField(m.focus)
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
}

// isMultiline reports whether a field takes free text with line breaks
func (m *BuilderModel) isMultiline(idx int) bool {
	return idx == fieldCompanyAddress || idx == fieldNotes
}

func (m *BuilderModel) focusField(idx int) tea.Cmd {
	switch idx {
	case fieldCompanyAddress:
		return m.address.Focus()
	case fieldNotes:
		return m.notes.Focus()
	default:
		return m.fields[idx].Focus()
	}
}

func (m *BuilderModel) blurField(idx int) {
	switch idx {
	case fieldCompanyAddress:
		m.address.Blur()
	case fieldNotes:
		m.notes.Blur()
	default:
		m.fields[idx].Blur()
	}
}

func (m *BuilderModel) updateField(idx int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch idx {
	case fieldCompanyAddress:
		m.address, cmd = m.address.Update(msg)
	case fieldNotes:
		m.notes, cmd = m.notes.Update(msg)
	default:
		m.fields[idx], cmd = m.fields[idx].Update(msg)
	}
	return cmd
}

func (m *BuilderModel) fieldView(idx int) string {
	switch idx {
	case fieldCompanyAddress:
		return m.address.View()
	case fieldNotes:
		return m.notes.View()
	default:
		return m.fields[idx].View()
	}
}

// focusedItemIndex returns the line item index the focus is on, or -1
// when a base field is focused
func (m *BuilderModel) focusedItemIndex() int {
	if m.focus < baseFieldCount {
		return -1
	}
	return (m.focus - baseFieldCount) / itemFieldCount
}

func (m *BuilderModel) View() string {
	form := m.viewForm()
	preview := previewTitleStyle.Render("Live Preview") + "\n" + m.preview

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(3).Render(form),
		preview,
	)
}

func (m *BuilderModel) viewForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Create Invoice") + "  " +
		subtitleStyle.Render(m.inv.InvoiceNumber) + "\n\n")

	// Selectors driven by key toggles rather than text entry
	cur := domain.CurrencyByCode(m.inv.Currency)
	s.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		subtitleStyle.Render("Currency:"),
		selectorStyle.Render(fmt.Sprintf("%s (%s)", cur.Code, cur.Symbol)),
		subtitleStyle.Render("Template:"),
		selectorStyle.Render(string(domain.ResolveTemplate(m.inv.Template))),
		subtitleStyle.Render("Advance:"),
		selectorStyle.Render(onOff(m.inv.IsAdvancePayment)),
	))

	labels := []string{
		"Company:", "Address:", "Website:", "Logo:",
		"Bill To:", "Email:", "Invoice Date:", "Due Date:",
		"Tax Rate (%):", "Advance Paid:", "Notes:",
	}
	for i, label := range labels {
		s.WriteString(m.viewField(i, label))
	}

	s.WriteString(fieldLabelStyle.Render("Items") + "\n")
	for i := range m.inv.Items {
		base := baseFieldCount + i*itemFieldCount
		marker := "  "
		if idx := m.focusedItemIndex(); idx == i {
			marker = "> "
		}
		s.WriteString(fmt.Sprintf("%s%s x%s @ %s\n",
			marker,
			m.fields[base].View(),
			m.fields[base+1].View(),
			m.fields[base+2].View(),
		))
	}
	s.WriteString("\n")

	if m.logoWarn != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(warningColor).Render("  "+m.logoWarn) + "\n")
	}
	if m.statusMsg != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n")
	}
	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("  Error: %v", m.err)) + "\n")
	}

	s.WriteString("\n" + helpStyle.Render("  tab: next field  ctrl+a/x: add/remove item  ctrl+g/t/f: currency/template/advance") + "\n")
	s.WriteString(helpStyle.Render("  ctrl+s: save  ctrl+d: pdf  ctrl+p: print  ctrl+n: new  esc: saved invoices"))

	return s.String()
}

func (m *BuilderModel) viewField(idx int, label string) string {
	indicator := "  "
	style := subtitleStyle
	if idx == m.focus {
		indicator = "> "
		style = fieldLabelStyle
	}
	lead := fmt.Sprintf("%s%-14s ", indicator, style.Render(label))
	if m.isMultiline(idx) {
		return lipgloss.JoinHorizontal(lipgloss.Top, lead, m.fieldView(idx)) + "\n"
	}
	return lead + m.fieldView(idx) + "\n"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
