package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/caret/internal/engine/textrange"
)

// View draws a text area and a status line onto a screen.
type View struct {
	screen tcell.Screen

	textStyle      tcell.Style
	selectionStyle tcell.Style
	statusStyle    tcell.Style

	// top is the first visible line.
	top int
}

// NewView creates a view over screen.
func NewView(screen tcell.Screen) *View {
	return &View{
		screen:         screen,
		textStyle:      tcell.StyleDefault,
		selectionStyle: tcell.StyleDefault.Reverse(true),
		statusStyle:    tcell.StyleDefault.Reverse(true).Bold(true),
	}
}

// Draw renders tr with the caret at its selection end and status on the
// bottom row.
func (v *View) Draw(tr textrange.TextRange, caret int, status string) {
	v.screen.Clear()
	width, height := v.screen.Size()
	rows := height - 1
	if rows <= 0 || width <= 0 {
		v.screen.Show()
		return
	}

	caretLine := textrange.LineIndex(tr.Value, caret)
	v.scrollTo(caretLine, rows)

	lines := strings.Split(tr.Value, "\n")
	offset := 0
	for i, line := range lines {
		if i >= v.top && i < v.top+rows {
			v.drawLine(line, offset, i-v.top, width, tr)
		}
		offset += len(line) + 1
	}

	caretX := uniseg.StringWidth(textrange.CurrentLine(tr.Value, caret))
	if caretX < width {
		v.screen.ShowCursor(caretX, caretLine-v.top)
	} else {
		v.screen.HideCursor()
	}

	v.drawStatus(status, rows, width)
	v.screen.Show()
}

// scrollTo adjusts top so line is visible.
func (v *View) scrollTo(line, rows int) {
	if line < v.top {
		v.top = line
	}
	if line >= v.top+rows {
		v.top = line - rows + 1
	}
}

// drawLine draws one line. base is the byte offset of the line in the
// whole value, used to highlight the selection.
func (v *View) drawLine(line string, base, y, width int, tr textrange.TextRange) {
	x := 0
	pos := 0
	state := -1
	for pos < len(line) && x < width {
		var cluster string
		var w int
		cluster, _, w, state = uniseg.FirstGraphemeClusterInString(line[pos:], state)

		style := v.textStyle
		if at := base + pos; at >= tr.SelectionStart && at < tr.SelectionEnd {
			style = v.selectionStyle
		}

		runes := []rune(cluster)
		primary, combining := runes[0], runes[1:]
		if primary == '\t' || w == 0 {
			primary, combining, w = ' ', nil, 1
		}
		v.screen.SetContent(x, y, primary, combining, style)

		x += w
		pos += len(cluster)
	}
}

func (v *View) drawStatus(status string, y, width int) {
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, v.statusStyle)
		x += max(uniseg.StringWidth(string(r)), 1)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.statusStyle)
	}
}
