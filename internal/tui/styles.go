package tui

import "github.com/WesternSpaces/delta-fast-track-simulator/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	ColorPrimary = tuistyles.ColorPrimary
	ColorAccent  = tuistyles.ColorAccent
	ColorSuccess = tuistyles.ColorSuccess
	ColorDanger  = tuistyles.ColorDanger
	ColorMuted   = tuistyles.ColorMuted

	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	MetricPositiveStyle = tuistyles.MetricPositiveStyle
	MetricNegativeStyle = tuistyles.MetricNegativeStyle
	ErrorStyle          = tuistyles.ErrorStyle
)

// Re-export helper functions
var (
	FormatCurrency = tuistyles.FormatCurrency
)
