package viewer

import "github.com/gdamore/tcell/v2"

// Theme holds the viewer styles.
type Theme struct {
	Text      tcell.Style
	Highlight tcell.Style
	Footer    tcell.Style
}

// DefaultTheme returns the default color scheme.
func DefaultTheme() Theme {
	return Theme{
		Text:      tcell.StyleDefault,
		Highlight: tcell.StyleDefault.Background(tcell.Color33).Foreground(tcell.ColorWhite),
		Footer:    tcell.StyleDefault.Reverse(true),
	}
}
