package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used to draw the scoreboard and log
type Theme struct {
	Header  lipgloss.Style
	Player  lipgloss.Style
	Leader  lipgloss.Style
	Current lipgloss.Style
	Frame   lipgloss.Style
	Total   lipgloss.Style
	Border  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// DefaultTheme is the purple-header theme
var DefaultTheme = Theme{
	Header: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Bold(true),
	Player: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")),
	Leader: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true),
	Current: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575")).
		Bold(true),
	Frame: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")),
	Total: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#96CEB4")),
	Border: lipgloss.Color("#626262"),
	Focus:  lipgloss.Color("#04B575"),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#96CEB4")).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFEAA7")).
		Bold(true),
	Info: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")),
}

// LightTheme suits light terminal backgrounds
var LightTheme = Theme{
	Header: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#5A3FC0")).
		Bold(true),
	Player:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")),
	Leader:  lipgloss.NewStyle().Foreground(lipgloss.Color("#B8860B")).Bold(true),
	Current: lipgloss.NewStyle().Foreground(lipgloss.Color("#027A48")).Bold(true),
	Frame:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")),
	Total:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D5B")),
	Border:  lipgloss.Color("#9E9E9E"),
	Focus:   lipgloss.Color("#027A48"),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D5B")).Bold(true),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#B26A00")).Bold(true),
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#757575")),
}

// DarkTheme drops the header background for dim terminals
var DarkTheme = func() Theme {
	t := DefaultTheme
	t.Header = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	t.Border = lipgloss.Color("#3A3A3A")
	return t
}()

// ThemeByName returns the named theme, falling back to DefaultTheme
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "dark":
		return DarkTheme
	default:
		return DefaultTheme
	}
}
