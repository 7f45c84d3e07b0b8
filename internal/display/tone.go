package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the look of one tone.
type Theme struct {
	Text   lipgloss.Color
	Accent lipgloss.Color
	// Frames animate the loading line.
	Frames  []string
	Loading string
	// Pace scales fade delays; above 1 is slower.
	Pace float64
}

var themes = map[string]Theme{
	"cyberpunk": {Text: "#00FF9F", Accent: "#FF003C", Frames: []string{"▓", "▒", "░", "▒", "▓", "█", "▓", "▒"}, Loading: "Hacking the Matrix...", Pace: 0.8},
	"mellow":    {Text: "#E8D5B7", Accent: "#C3A6FF", Frames: []string{"·", "•", "●", "•"}, Loading: "Gathering thoughts...", Pace: 1.5},
	"retro":     {Text: "#FFB000", Accent: "#FF6E27", Frames: []string{"|", "/", "-", `\`}, Loading: "Processing data...", Pace: 1.2},
	"neon":      {Text: "#FF2CDF", Accent: "#00E5FF", Frames: []string{"◈", "◇", "◆", "◇"}, Loading: "Syncing frequencies...", Pace: 0.8},
	"epic":      {Text: "#FFD700", Accent: "#B22222", Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, Loading: "Loading wisdom...", Pace: 1},
	"zen":       {Text: "#9FD8CB", Accent: "#517664", Frames: []string{"○", "◔", "◑", "◕", "●", "◕", "◑", "◔"}, Loading: "Contemplating wisdom...", Pace: 2},
}

var defaultTheme = Theme{Text: "#FFFFFF", Accent: "#888888", Frames: []string{"-", "\\", "|", "/"}, Loading: "Loading...", Pace: 1}

// ThemeFor returns the theme of tone. Combined tones ("epic+zen") use the
// first tone.
func ThemeFor(tone string) Theme {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tone)), "+")
	if t, ok := themes[base]; ok {
		return t
	}
	return defaultTheme
}
