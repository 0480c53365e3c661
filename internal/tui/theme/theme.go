package theme

import "github.com/charmbracelet/lipgloss"

// Colors holds the shared color palette used across the TUI.
type Colors struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

// Theme centralizes palette and style configuration for the browse UI.
type Theme struct {
	colors Colors
}

// Option configures a Theme during construction.
type Option func(*Theme)

// WithColors overrides the base color palette.
func WithColors(colors Colors) Option {
	return func(t *Theme) {
		t.colors = colors
	}
}

// Default returns the standard theme.
func Default(opts ...Option) Theme {
	t := Theme{
		colors: Colors{
			Primary:    lipgloss.Color("99"),
			Secondary:  lipgloss.Color("63"),
			Background: lipgloss.Color("236"),
			Muted:      lipgloss.Color("241"),
			Success:    lipgloss.Color("42"),
			Error:      lipgloss.Color("196"),
		},
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Colors exposes the palette for components that build custom styles.
func (t Theme) Colors() Colors {
	return t.colors
}

// HeaderStyle renders the application title bar.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(t.colors.Primary).
		Padding(0, 1)
}

// ColumnHeaderStyle renders the table column labels.
func (t Theme) ColumnHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.colors.Secondary)
}

// StatusBarStyle renders the informational status line.
func (t Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(t.colors.Background).
		Padding(0, 1)
}

// ErrorStyle renders error messages in the status area.
func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.colors.Error)
}

// SuccessStyle renders confirmation messages in the status area.
func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.colors.Success)
}

// MutedStyle renders key hints and secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.colors.Muted)
}
