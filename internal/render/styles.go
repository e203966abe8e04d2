package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/billfold/internal/domain"
)

var (
	// Colors
	inkColor     = lipgloss.Color("254") // Near-white
	mutedColor   = lipgloss.Color("245") // Gray
	primaryColor = lipgloss.Color("39")  // Blue
	accentColor  = lipgloss.Color("205") // Pink
)

// styleSet controls the presentational differences between layout variants.
// Content never varies with the variant, only these styles do.
type styleSet struct {
	paper        lipgloss.Style
	headerBand   lipgloss.Style
	companyName  lipgloss.Style
	invoiceLabel lipgloss.Style
	sectionLabel lipgloss.Style
	tableHeader  lipgloss.Style
	totalsBlock  lipgloss.Style
	grandTotal   lipgloss.Style
	muted        lipgloss.Style
}

var (
	classicStyles = styleSet{
		paper:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
		headerBand:   lipgloss.NewStyle(),
		companyName:  lipgloss.NewStyle().Bold(true).Foreground(inkColor),
		invoiceLabel: lipgloss.NewStyle().Bold(true).Foreground(inkColor),
		sectionLabel: lipgloss.NewStyle().Bold(true).Foreground(mutedColor),
		tableHeader:  lipgloss.NewStyle().Bold(true).Foreground(mutedColor),
		totalsBlock:  lipgloss.NewStyle(),
		grandTotal:   lipgloss.NewStyle().Bold(true),
		muted:        lipgloss.NewStyle().Foreground(mutedColor),
	}

	modernStyles = styleSet{
		paper:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Padding(1, 2),
		headerBand:   lipgloss.NewStyle().Background(primaryColor).Foreground(lipgloss.Color("231")).Padding(0, 1),
		companyName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		invoiceLabel: lipgloss.NewStyle().Bold(true).Background(accentColor).Foreground(lipgloss.Color("231")).Padding(0, 1),
		sectionLabel: lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		tableHeader:  lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		totalsBlock:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Padding(0, 1),
		grandTotal:   lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		muted:        lipgloss.NewStyle().Foreground(mutedColor),
	}

	minimalStyles = styleSet{
		paper:        lipgloss.NewStyle().Padding(1, 2),
		headerBand:   lipgloss.NewStyle(),
		companyName:  lipgloss.NewStyle().Foreground(inkColor),
		invoiceLabel: lipgloss.NewStyle().Faint(true),
		sectionLabel: lipgloss.NewStyle().Faint(true),
		tableHeader:  lipgloss.NewStyle().Underline(true),
		totalsBlock:  lipgloss.NewStyle(),
		grandTotal:   lipgloss.NewStyle().Bold(true),
		muted:        lipgloss.NewStyle().Foreground(mutedColor),
	}
)

// stylesFor returns the style set for a resolved template variant
func stylesFor(t domain.Template) styleSet {
	switch t {
	case domain.TemplateModern:
		return modernStyles
	case domain.TemplateMinimal:
		return minimalStyles
	default:
		return classicStyles
	}
}
