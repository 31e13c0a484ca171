// Package viewer is a minimal full-screen pager for processed text. It shows
// highlighted regions in a distinct style instead of printing marker tags.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/textproc/internal/textutil"
)

// Viewer draws a Document on a tcell screen and scrolls it.
type Viewer struct {
	screen tcell.Screen
	doc    Document
	theme  Theme
	title  string
	top    int
}

// New creates a Viewer on an initialized screen.
func New(screen tcell.Screen, doc Document, title string) *Viewer {
	return &Viewer{
		screen: screen,
		doc:    doc,
		theme:  DefaultTheme(),
		title:  title,
	}
}

// Show opens the terminal, runs the viewer until the user quits and restores
// the terminal.
func Show(doc Document, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return New(screen, doc, title).Run()
}

// Run processes events until the user quits or the screen is finalized.
func (v *Viewer) Run() error {
	for {
		v.Draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
		}
	}
}

// Top returns the index of the first visible line.
func (v *Viewer) Top() int {
	return v.top
}

func (v *Viewer) bodyHeight() int {
	_, h := v.screen.Size()
	return max(h-1, 1)
}

func (v *Viewer) maxTop() int {
	return max(len(v.doc.Lines)-v.bodyHeight(), 0)
}

func (v *Viewer) scroll(delta int) {
	v.top = min(max(v.top+delta, 0), v.maxTop())
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	page := v.bodyHeight()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scroll(-1)
	case tcell.KeyDown, tcell.KeyEnter:
		v.scroll(1)
	case tcell.KeyPgUp:
		v.scroll(-page)
	case tcell.KeyPgDn:
		v.scroll(page)
	case tcell.KeyHome:
		v.top = 0
	case tcell.KeyEnd:
		v.top = v.maxTop()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'k':
			v.scroll(-1)
		case 'j':
			v.scroll(1)
		case ' ':
			v.scroll(page)
		case 'b':
			v.scroll(-page)
		case 'g':
			v.top = 0
		case 'G':
			v.top = v.maxTop()
		}
	}
	return false
}

// Draw renders the visible lines and the footer.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, _ := v.screen.Size()
	height := v.bodyHeight()

	for row := 0; row < height; row++ {
		idx := v.top + row
		if idx >= len(v.doc.Lines) {
			break
		}
		x := 0
		for _, seg := range v.doc.Lines[idx] {
			style := v.theme.Text
			if seg.Highlight {
				style = v.theme.Highlight
			}
			x = v.drawText(x, row, width, textutil.SanitizeLine(seg.Text, textutil.DefaultTabWidth), style)
		}
	}
	v.drawFooter(width, height)
	v.screen.Show()
}

func (v *Viewer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	for _, ru := range text {
		w := textutil.RuneWidth(ru)
		if x+w > maxX {
			break
		}
		v.screen.SetContent(x, y, ru, nil, style)
		for i := 1; i < w; i++ {
			v.screen.SetContent(x+i, y, ' ', nil, style)
		}
		x += max(w, 1)
	}
	return x
}

func (v *Viewer) drawFooter(width, y int) {
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.theme.Footer)
	}

	last := min(v.top+v.bodyHeight(), len(v.doc.Lines))
	status := fmt.Sprintf("%d-%d/%d  q:quit", min(v.top+1, last), last, len(v.doc.Lines))
	v.drawText(0, y, width, v.title, v.theme.Footer)
	v.drawText(max(width-textutil.DisplayWidth(status), 0), y, width, status, v.theme.Footer)
}
