package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/tui/tuistyles"
)

// OptionCard displays one decision option as a bordered card with its
// headline metrics. Verdict is rendered green when favorable, red otherwise,
// and omitted when nil.
type OptionCard struct {
	Title    string
	Tagline  string
	Lines    []string
	Verdict  *bool
	Width    int
	Selected bool
}

// NewOptionCard creates a new option card
func NewOptionCard(title, tagline string) *OptionCard {
	return &OptionCard{
		Title:   title,
		Tagline: tagline,
		Width:   30,
	}
}

// AddLine appends a metric line to the card body
func (c *OptionCard) AddLine(line string) *OptionCard {
	c.Lines = append(c.Lines, line)
	return c
}

// WithVerdict sets the worth-it verdict
func (c *OptionCard) WithVerdict(addsValue bool) *OptionCard {
	c.Verdict = &addsValue
	return c
}

// WithWidth sets the card width
func (c *OptionCard) WithWidth(width int) *OptionCard {
	c.Width = width
	return c
}

// SetSelected sets the highlight state
func (c *OptionCard) SetSelected(selected bool) *OptionCard {
	c.Selected = selected
	return c
}

// Render returns the styled option card
func (c *OptionCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground)
	if c.Selected {
		titleStyle = titleStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(titleStyle.Render(c.Title))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(c.Tagline))
	content.WriteString("\n\n")

	for _, line := range c.Lines {
		content.WriteString(line)
		content.WriteString("\n")
	}

	if c.Verdict != nil {
		content.WriteString("\n")
		if *c.Verdict {
			content.WriteString(tuistyles.MetricPositiveStyle.Render("Adds value"))
		} else {
			content.WriteString(tuistyles.MetricNegativeStyle.Render("May not pencil"))
		}
	}

	cardStyle := tuistyles.BorderStyle
	if c.Selected {
		cardStyle = tuistyles.ActiveBorderStyle
	}
	return cardStyle.Padding(0, 1).Width(c.Width).Render(content.String())
}
