package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable policy lever with a visual slider.
// When Options is set the slider snaps between those values instead of
// stepping linearly; affordability periods use this for their uneven ladder.
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Options     []float64
	Unit        string // e.g., "%", "yrs", "$"
	Format      string // e.g., "%.2f", "%.0f"
	Width       int    // Total width of slider bar
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  30,
	}
}

// WithOptions restricts the slider to a fixed ladder of values
func (p *ParameterSlider) WithOptions(options []float64) *ParameterSlider {
	p.Options = options
	if len(options) > 0 {
		p.Min = options[0]
		p.Max = options[len(options)-1]
	}
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// optionIndex returns the position of the current value on the ladder
func (p *ParameterSlider) optionIndex() int {
	for i, v := range p.Options {
		if v == p.Value {
			return i
		}
	}
	return 0
}

// Increment increases the value by one step
func (p *ParameterSlider) Increment() {
	if len(p.Options) > 0 {
		if i := p.optionIndex(); i < len(p.Options)-1 {
			p.Value = p.Options[i+1]
		}
		return
	}
	newValue := p.Value + p.Step
	if newValue <= p.Max {
		p.Value = newValue
	}
}

// Decrement decreases the value by one step
func (p *ParameterSlider) Decrement() {
	if len(p.Options) > 0 {
		if i := p.optionIndex(); i > 0 {
			p.Value = p.Options[i-1]
		}
		return
	}
	newValue := p.Value - p.Step
	if newValue >= p.Min {
		p.Value = newValue
	}
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")

	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(valueStyle.Render(valueStr))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	if p.IsFocused && p.Description != "" {
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString("\n")
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

// renderSliderBar creates the visual slider bar
func (p *ParameterSlider) renderSliderBar() string {
	percentage := p.Percentage()
	thumbPos := int(percentage * float64(p.Width-1))

	var bar strings.Builder
	for i := 0; i < p.Width; i++ {
		if i == thumbPos {
			bar.WriteString(tuistyles.SliderThumbStyle.Render("●"))
		} else {
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	return bar.String()
}
