package styles

import "github.com/charmbracelet/lipgloss"

var darkMode = lipgloss.HasDarkBackground()

// shade is a style in two variants, one per terminal background.
type shade struct {
	dark, light lipgloss.Style
}

func (s shade) pick() lipgloss.Style {
	if darkMode {
		return s.dark
	}
	return s.light
}

func foreground(dark, light string) shade {
	return shade{
		dark:  lipgloss.NewStyle().Foreground(lipgloss.Color(dark)),
		light: lipgloss.NewStyle().Foreground(lipgloss.Color(light)),
	}
}

var (
	accented    = foreground("#ffffff", "#000000")
	secondary   = foreground("#888888", "#444444")
	faint       = foreground("#999999", "#aaaaaa")
	faintAccent = foreground("#aaaaaa", "#999999")

	bold = lipgloss.NewStyle().Bold(true)
)

func Accented() lipgloss.Style {
	return accented.pick()
}

func Secondary() lipgloss.Style {
	return secondary.pick()
}

func Faint() lipgloss.Style {
	return faint.pick()
}

func FaintAccent() lipgloss.Style {
	return faintAccent.pick()
}

func Bold() lipgloss.Style {
	return bold
}
