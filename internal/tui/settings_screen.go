package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/domain"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

const (
	settingCompanyName = iota
	settingCompanyAddress
	settingCompanyWebsite
	settingCompanyLogo
	settingDefaultTaxRate
	settingOutputDir
	settingsFieldCount
)

// SettingsModel edits the config defaults new invoices are seeded from
type SettingsModel struct {
	app    *app.App
	mode   settingsMode
	fields []textinput.Model
	focus  int

	// Toggled with keys rather than typed
	defaultCurrency string
	defaultTemplate string

	statusMsg string
	err       error
}

type settingsSavedMsg struct {
	err error
}

// NewSettingsModel creates the settings screen
func NewSettingsModel(a *app.App) tea.Model {
	m := &SettingsModel{app: a}
	m.initFields()
	return m
}

// IsCapturingInput returns true while editing
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) initFields() {
	cfg := m.app.Config
	m.fields = make([]textinput.Model, settingsFieldCount)

	newField := func(idx int, placeholder, value string) {
		t := textinput.New()
		t.Placeholder = placeholder
		t.Width = 40
		t.CharLimit = 256
		t.SetValue(value)
		m.fields[idx] = t
	}

	newField(settingCompanyName, "Your Company", cfg.Company.Name)
	newField(settingCompanyAddress, "Company Address", cfg.Company.Address)
	newField(settingCompanyWebsite, "www.example.com", cfg.Company.Website)
	newField(settingCompanyLogo, "/path/to/logo.png", cfg.Company.Logo)
	newField(settingDefaultTaxRate, "0", formatNum(cfg.Invoice.DefaultTaxRate))
	newField(settingOutputDir, "~/invoices", cfg.Invoice.OutputDir)

	m.defaultCurrency = cfg.Invoice.DefaultCurrency
	m.defaultTemplate = cfg.Invoice.DefaultTemplate
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	cfg := m.app.Config
	cfg.Company.Name = m.fields[settingCompanyName].Value()
	cfg.Company.Address = m.fields[settingCompanyAddress].Value()
	cfg.Company.Website = m.fields[settingCompanyWebsite].Value()
	cfg.Company.Logo = m.fields[settingCompanyLogo].Value()
	cfg.Invoice.DefaultTaxRate = parseAmount(m.fields[settingDefaultTaxRate].Value())
	cfg.Invoice.OutputDir = m.fields[settingOutputDir].Value()
	cfg.Invoice.DefaultCurrency = m.defaultCurrency
	cfg.Invoice.DefaultTemplate = m.defaultTemplate

	return func() tea.Msg {
		return settingsSavedMsg{err: m.app.SaveConfig()}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		if m.mode == settingsModeView {
			m.initFields()
		}
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = "Settings saved"
		m.mode = settingsModeView
		m.fields[m.focus].Blur()
		return m, nil

	case tea.KeyMsg:
		if m.mode == settingsModeView {
			switch msg.String() {
			case "enter", "e":
				m.mode = settingsModeEdit
				m.focus = settingCompanyName
				m.statusMsg = ""
				return m, m.fields[m.focus].Focus()
			}
			return m, nil
		}
		return m.updateEdit(msg)
	}
	return m, nil
}

func (m *SettingsModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = settingsModeView
		m.fields[m.focus].Blur()
		m.initFields()
		m.statusMsg = "Changes discarded"
		return m, nil

	case "tab", "down", "enter":
		m.fields[m.focus].Blur()
		m.focus = (m.focus + 1) % settingsFieldCount
		return m, m.fields[m.focus].Focus()

	case "shift+tab", "up":
		m.fields[m.focus].Blur()
		m.focus = (m.focus - 1 + settingsFieldCount) % settingsFieldCount
		return m, m.fields[m.focus].Focus()

	case "ctrl+g":
		m.defaultCurrency = domain.NextCurrencyCode(m.defaultCurrency)
		return m, nil

	case "ctrl+t":
		m.defaultTemplate = string(domain.NextTemplate(domain.Template(m.defaultTemplate)))
		return m, nil

	case "ctrl+s":
		return m, m.saveSettings()
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Settings") + "\n\n")

	cur := domain.CurrencyByCode(m.defaultCurrency)
	s.WriteString(fmt.Sprintf("  %s %s   %s %s\n\n",
		subtitleStyle.Render("Default Currency:"),
		selectorStyle.Render(fmt.Sprintf("%s (%s)", cur.Code, cur.Symbol)),
		subtitleStyle.Render("Default Template:"),
		selectorStyle.Render(string(domain.ResolveTemplate(domain.Template(m.defaultTemplate)))),
	))

	labels := []string{
		"Company Name:", "Address:", "Website:", "Logo:",
		"Default Tax (%):", "Output Dir:",
	}
	for i, label := range labels {
		indicator := "  "
		style := subtitleStyle
		if m.mode == settingsModeEdit && i == m.focus {
			indicator = "> "
			style = fieldLabelStyle
		}
		if m.mode == settingsModeView {
			value := m.fields[i].Value()
			if value == "" {
				value = subtitleStyle.Render("(not set)")
			}
			s.WriteString(fmt.Sprintf("%s%-17s %s\n", indicator, style.Render(label), value))
		} else {
			s.WriteString(fmt.Sprintf("%s%-17s %s\n", indicator, style.Render(label), m.fields[i].View()))
		}
	}

	s.WriteString("\n" + subtitleStyle.Render(fmt.Sprintf("  Database: %s", m.app.Config.Database.Path)) + "\n")

	if m.statusMsg != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("  Error: %v", m.err)) + "\n")
	}

	if m.mode == settingsModeView {
		s.WriteString("\n" + helpStyle.Render("  enter: edit settings"))
	} else {
		s.WriteString("\n" + helpStyle.Render("  tab: next  ctrl+g: currency  ctrl+t: template  ctrl+s: save  esc: cancel"))
	}
	return s.String()
}
