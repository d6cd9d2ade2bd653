package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the viewer chrome. The rendered image is never themed.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#00ffff"),
		Border:  lipgloss.Color("#444466"),
		Muted:   lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Border:  lipgloss.Color("#005500"),
		Muted:   lipgloss.Color("#007700"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Border:  lipgloss.Color("#888888"),
		Muted:   lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Border:  lipgloss.Color("#00a8cc"),
		Muted:   lipgloss.Color("#4488aa"),
	}

	Themes = []Theme{ThemeCyberpunk, ThemeRetroGreen, ThemeMinimal, ThemeOcean}
)

// GetTheme returns a theme by name, defaulting to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t Theme) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
