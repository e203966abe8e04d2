package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/config"
)

func newTestBuilder() *BuilderModel {
	a := &app.App{Config: config.DefaultConfig()}
	return NewBuilderModel(a).(*BuilderModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (m *BuilderModel) focusOn(idx int) {
	m.blurField(m.focus)
	m.focus = idx
	m.focusField(idx)
}

func TestBuilder_NotesAcceptLineBreaks(t *testing.T) {
	m := newTestBuilder()
	m.focusOn(fieldNotes)

	m.updateKey(keyRunes("Bank: 123"))
	m.updateKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.updateKey(keyRunes("IBAN: XYZ"))

	if m.inv.Notes != "Bank: 123\nIBAN: XYZ" {
		t.Errorf("Notes = %q, want two lines", m.inv.Notes)
	}
}

func TestBuilder_AddressAcceptsLineBreaks(t *testing.T) {
	m := newTestBuilder()
	m.focusOn(fieldCompanyAddress)

	m.updateKey(keyRunes("1 Main St"))
	m.updateKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.updateKey(keyRunes("Springfield"))

	if !strings.Contains(m.inv.CompanyAddress, "\n") {
		t.Errorf("CompanyAddress = %q, want a line break", m.inv.CompanyAddress)
	}
}

func TestBuilder_EnterAdvancesSingleLineFields(t *testing.T) {
	m := newTestBuilder()
	if m.focus != fieldCompanyName {
		t.Fatalf("initial focus = %d, want company name", m.focus)
	}

	m.updateKey(tea.KeyMsg{Type: tea.KeyEnter})

	if m.focus != fieldCompanyAddress {
		t.Errorf("focus after enter = %d, want %d", m.focus, fieldCompanyAddress)
	}
}

func TestBuilder_TabLeavesTextarea(t *testing.T) {
	m := newTestBuilder()
	m.focusOn(fieldCompanyAddress)

	m.updateKey(tea.KeyMsg{Type: tea.KeyTab})

	if m.focus != fieldCompanyWebsite {
		t.Errorf("focus after tab = %d, want %d", m.focus, fieldCompanyWebsite)
	}
}

func TestBuilder_NonFiniteAmountInputCoercesToZero(t *testing.T) {
	m := newTestBuilder()
	m.focusOn(fieldTaxRate)
	m.fields[fieldTaxRate].SetValue("")

	m.updateKey(keyRunes("NaN"))

	if m.inv.TaxRate != 0 {
		t.Errorf("TaxRate = %v, want 0 for non-finite input", m.inv.TaxRate)
	}

	m.focusOn(fieldAdvanceAmount)
	m.fields[fieldAdvanceAmount].SetValue("")
	m.updateKey(keyRunes("Inf"))

	if m.inv.AdvancePaymentAmount != 0 {
		t.Errorf("AdvancePaymentAmount = %v, want 0 for non-finite input", m.inv.AdvancePaymentAmount)
	}
}
