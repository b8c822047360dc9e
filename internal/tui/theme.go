package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermTheme holds all color values for a TUI theme.
type TermTheme struct {
	Name string

	// Brand
	Accent    lipgloss.Color
	AccentDim lipgloss.Color

	// Semantic
	Success lipgloss.Color
	Error   lipgloss.Color

	// Text
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color

	// Surfaces
	Border       lipgloss.Color
	ActiveBorder lipgloss.Color
	Disabled     lipgloss.Color
}

// DarkTheme is the default dark terminal theme.
var DarkTheme = TermTheme{
	Name:         "dark",
	Accent:       lipgloss.Color("#3b82f6"),
	AccentDim:    lipgloss.Color("#1d4ed8"),
	Success:      lipgloss.Color("#22c55e"),
	Error:        lipgloss.Color("#ef4444"),
	Primary:      lipgloss.Color("#e5e7eb"),
	Secondary:    lipgloss.Color("#9ca3af"),
	Dim:          lipgloss.Color("#4b5563"),
	Border:       lipgloss.Color("#374151"),
	ActiveBorder: lipgloss.Color("#3b82f6"),
	Disabled:     lipgloss.Color("#2a2f3a"),
}

// LightTheme is the light terminal theme.
var LightTheme = TermTheme{
	Name:         "light",
	Accent:       lipgloss.Color("#2563eb"),
	AccentDim:    lipgloss.Color("#1e40af"),
	Success:      lipgloss.Color("#15803d"),
	Error:        lipgloss.Color("#b91c1c"),
	Primary:      lipgloss.Color("#111827"),
	Secondary:    lipgloss.Color("#374151"),
	Dim:          lipgloss.Color("#6b7280"),
	Border:       lipgloss.Color("#d1d5db"),
	ActiveBorder: lipgloss.Color("#2563eb"),
	Disabled:     lipgloss.Color("#e5e7eb"),
}

// DetectTheme picks a theme by name ("dark", "light"); anything else
// falls back to the COLORFGBG heuristic and then to dark.
func DetectTheme(name string) TermTheme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme
	case "light":
		return LightTheme
	}

	// COLORFGBG format: "fg;bg"
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			// 7 and 15 are the light backgrounds
			if bg == "15" || bg == "7" {
				return LightTheme
			}
		}
	}

	return DarkTheme
}

// StyleSet contains pre-computed lipgloss styles derived from a theme.
type StyleSet struct {
	Theme TermTheme

	// Text styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	AccentTxt    lipgloss.Style
	DimTxt       lipgloss.Style
	ErrorTxt     lipgloss.Style
	PrimaryTxt   lipgloss.Style
	SecondaryTxt lipgloss.Style

	// Border styles
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	// Kbd hint
	KbdKey  lipgloss.Style
	KbdDesc lipgloss.Style

	// Banner
	Banner lipgloss.Style

	// Summary
	SummaryKey   lipgloss.Style
	SummaryValue lipgloss.Style
	BorderedBox  lipgloss.Style

	// Progress badges
	StepBadgeReached lipgloss.Style
	StepBadgePending lipgloss.Style
	ConnectorDone    lipgloss.Style
	ConnectorPending lipgloss.Style

	// Navigation buttons
	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDisabled  lipgloss.Style
}

// NewStyleSet creates a StyleSet from a theme.
func NewStyleSet(theme TermTheme) *StyleSet {
	button := lipgloss.NewStyle().Padding(0, 2)

	return &StyleSet{
		Theme: theme,

		Title:        lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(theme.Secondary),
		AccentTxt:    lipgloss.NewStyle().Foreground(theme.Accent),
		DimTxt:       lipgloss.NewStyle().Foreground(theme.Dim),
		ErrorTxt:     lipgloss.NewStyle().Foreground(theme.Error),
		PrimaryTxt:   lipgloss.NewStyle().Foreground(theme.Primary),
		SecondaryTxt: lipgloss.NewStyle().Foreground(theme.Secondary),

		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ActiveBorder),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		KbdKey: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Dim).
			Padding(0, 1),
		KbdDesc: lipgloss.NewStyle().
			Foreground(theme.Dim),

		Banner: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		SummaryKey: lipgloss.NewStyle().
			Foreground(theme.Secondary),
		SummaryValue: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StepBadgeReached: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),
		StepBadgePending: lipgloss.NewStyle().
			Background(theme.Border).
			Foreground(theme.Secondary).
			Padding(0, 1),
		ConnectorDone:    lipgloss.NewStyle().Foreground(theme.Accent),
		ConnectorPending: lipgloss.NewStyle().Foreground(theme.Border),

		ButtonPrimary: button.
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),
		ButtonSecondary: button.
			Background(theme.Dim).
			Foreground(lipgloss.Color("#ffffff")),
		ButtonDisabled: button.
			Background(theme.Disabled).
			Foreground(theme.Dim),
	}
}
