package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Brand        *lipgloss.Style
	BrandAccent  *lipgloss.Style
	Patient      *lipgloss.Style
	PatientMuted *lipgloss.Style
	Header       *lipgloss.Style
	SectionTitle *lipgloss.Style
	Row          *lipgloss.Style
	ActiveRow    *lipgloss.Style
	CursorRow    *lipgloss.Style
	Overlay      *lipgloss.Style
	OverlayTitle *lipgloss.Style
	Label        *lipgloss.Style
	Value        *lipgloss.Style
	SliderFill   *lipgloss.Style
	SliderTrack  *lipgloss.Style
	NotesTitle   *lipgloss.Style
	Image        *lipgloss.Style
	Dragging     *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Footer       *lipgloss.Style
	Filter       *lipgloss.Style
	FilterPrompt *lipgloss.Style
}

var defaultStyles = Styles{
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	BrandAccent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Patient: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	PatientMuted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	SectionTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Bold(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ActiveRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	CursorRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	SliderFill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	SliderTrack: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	NotesTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	Image: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("236")),
	),
	Dragging: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("33")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
