package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const searchPlaceholder = "Type to filter..."

type rect struct {
	y int
	x int
	h int
	w int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type layout struct {
	search rect
	list   rect
}

type listState struct {
	selected int
	scroll   int
}

type row struct {
	id       string
	label    string
	checked  bool
	dim      bool
	selected bool
	focused  bool
}

func computeLayout(screen tcell.Screen, statusHeight int) layout {
	maxX, maxY := screen.Size()
	if statusHeight <= 0 {
		statusHeight = 1
	}
	usableH := max(1, maxY-statusHeight)
	searchH := min(3, usableH)
	return layout{
		search: rect{y: 0, x: 0, h: searchH, w: maxX},
		list:   rect{y: searchH, x: 0, h: max(0, usableH-searchH), w: maxX},
	}
}

// rowAt maps a screen cell inside the list box to an index into rows.
func rowAt(list rect, scroll int, nRows int, x, y int) (int, bool) {
	if list.h < 3 || x <= list.x || x >= list.x+list.w-1 {
		return 0, false
	}
	line := y - list.y - 1
	if line < 0 || line >= list.h-2 {
		return 0, false
	}
	idx := scroll + line
	if idx < 0 || idx >= nRows {
		return 0, false
	}
	return idx, true
}

func draw(screen tcell.Screen, s *session) layout {
	screen.Clear()

	maxX, maxY := screen.Size()
	statusLines := buildStatusLines(maxX, statusSegments(s), countLabel(s))
	if maxY > 0 && len(statusLines) > maxY {
		statusLines = statusLines[len(statusLines)-maxY:]
	}
	lay := computeLayout(screen, max(1, len(statusLines)))

	s.list.clamp(len(s.rows))
	s.list.ensureVisible(lay.list.h-2, len(s.rows))

	drawBox(screen, lay.search, "Search", s.focus == focusSearch)
	drawSearch(screen, lay.search, s.filter, s.focus == focusSearch)

	drawBox(screen, lay.list, s.title, s.focus == focusList)
	drawList(screen, lay.list, renderRows(s, lay.list.h-2))

	drawStatusLines(screen, statusLines)
	screen.Show()
	return lay
}

func renderRows(s *session, viewH int) []row {
	if len(s.rows) == 0 {
		return []row{{label: "(no matches)", dim: true}}
	}
	rows := make([]row, 0, min(len(s.rows), max(0, viewH)))
	start := clamp(s.list.scroll, 0, max(0, len(s.rows)))
	end := min(len(s.rows), start+max(0, viewH))
	for i := start; i < end; i++ {
		r := s.rows[i]
		if s.mode == modeMulti {
			mark := "[ ] "
			if r.checked {
				mark = "[x] "
			}
			r.label = mark + r.label
		}
		rows = append(rows, r)
	}
	return applySelection(rows, s.focus == focusList, listState{selected: s.list.selected - start})
}

func applySelection(rows []row, focused bool, state listState) []row {
	if len(rows) == 0 {
		return rows
	}
	state.clamp(len(rows))
	rows[state.selected].selected = true
	rows[state.selected].focused = focused
	rows[state.selected].dim = false
	return rows
}

func statusSegments(s *session) []string {
	if s.focus == focusSearch {
		return []string{"Type to filter", "Enter/Tab: list", "Ctrl+U: clear", "Esc: cancel"}
	}
	if s.mode == modeMulti {
		return []string{"Up/Down: move", "Space: toggle", "a: select all", "Enter: confirm", "/: search", "Esc/q: cancel"}
	}
	return []string{"Up/Down: move", "Enter: select", "/: search", "Esc/q: cancel"}
}

func countLabel(s *session) string {
	total := len(s.items)
	parts := []string{}
	if s.filter != "" {
		parts = append(parts, fmt.Sprintf("%d/%d shown", len(s.rows), total))
	}
	if s.mode == modeMulti {
		parts = append(parts, fmt.Sprintf("%d/%d selected", s.chosen.Len(), total))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d items", total))
	}
	return strings.Join(parts, "  ")
}

func (s *listState) clamp(nItems int) {
	if nItems <= 0 {
		s.selected = 0
		s.scroll = 0
		return
	}
	s.selected = clamp(s.selected, 0, nItems-1)
	s.scroll = clamp(s.scroll, 0, max(0, nItems-1))
}

func (s *listState) ensureVisible(viewH int, nItems int) {
	if nItems <= 0 || viewH <= 0 {
		s.scroll = 0
		return
	}
	maxScroll := max(0, nItems-viewH)
	if s.selected < s.scroll {
		s.scroll = s.selected
	} else if s.selected >= s.scroll+viewH {
		s.scroll = s.selected - viewH + 1
	}
	s.scroll = clamp(s.scroll, 0, maxScroll)
}

func drawBox(screen tcell.Screen, r rect, title string, focused bool) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	borderStyle := tcell.StyleDefault
	if focused {
		borderStyle = borderStyle.Bold(true)
	} else {
		borderStyle = borderStyle.Dim(true)
	}
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		screen.SetContent(x, r.y, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, r.y+r.h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		screen.SetContent(r.x, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(r.x+r.w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(r.x, r.y+r.h-1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y+r.h-1, tcell.RuneLRCorner, nil, borderStyle)

	titleStyle := tcell.StyleDefault.Reverse(true)
	if focused {
		titleStyle = titleStyle.Bold(true)
		title = "> " + title + " <"
	} else {
		title = " " + title + " "
	}
	maxTitleWidth := max(0, r.w-2)
	title = truncate(title, maxTitleWidth)
	titleX := r.x + 1 + max(0, (maxTitleWidth-displayWidth(title))/2)
	writeText(screen, titleX, r.y, title, titleStyle)
}

func drawSearch(screen tcell.Screen, r rect, filter string, focused bool) {
	if r.h < 3 || r.w < 4 {
		screen.HideCursor()
		return
	}
	innerW := r.w - 2
	y := r.y + 1
	if filter == "" {
		writeText(screen, r.x+1, y, truncate(searchPlaceholder, innerW), tcell.StyleDefault.Dim(true))
	} else {
		writeText(screen, r.x+1, y, tailTruncate(filter, innerW-1), tcell.StyleDefault)
	}
	if focused {
		cursorX := r.x + 1 + min(displayWidth(filter), innerW-1)
		screen.ShowCursor(cursorX, y)
	} else {
		screen.HideCursor()
	}
}

func drawList(screen tcell.Screen, r rect, rows []row) {
	if r.h < 3 || r.w < 4 {
		return
	}
	innerH := r.h - 2
	innerW := r.w - 2
	for i := 0; i < innerH; i++ {
		y := r.y + 1 + i
		if i >= len(rows) {
			writeText(screen, r.x+1, y, padRight("", innerW), tcell.StyleDefault)
			continue
		}
		row := rows[i]
		style := tcell.StyleDefault
		if row.checked {
			style = style.Foreground(tcell.ColorGreen)
		}
		if row.selected {
			style = style.Reverse(true)
			if row.focused {
				style = style.Bold(true)
			} else {
				style = style.Dim(true)
			}
		} else if row.dim {
			style = style.Dim(true)
		}
		writeText(screen, r.x+1, y, padRight(truncate(row.label, innerW), innerW), style)
	}
}

type statusLine struct {
	groups []string
	right  string
}

// buildStatusLines packs hint groups into as many lines as the width
// needs; the count label is right-aligned on the last line.
func buildStatusLines(width int, groups []string, right string) []statusLine {
	lines := packStatusLines(width, groups)
	if right != "" && width > 0 {
		maxLeft := max(0, width-displayWidth(right)-2)
		if lineWidthGroups(lines[len(lines)-1].groups) > maxLeft {
			lines = packStatusLines(maxLeft, groups)
		}
	}
	lines[len(lines)-1].right = right
	return lines
}

func packStatusLines(width int, groups []string) []statusLine {
	if width <= 0 {
		return []statusLine{{}}
	}
	lines := []statusLine{}
	var current statusLine
	curWidth := 0
	for _, g := range groups {
		gw := displayWidth(g)
		if gw == 0 {
			continue
		}
		addWidth := gw
		if len(current.groups) > 0 {
			addWidth += 2
		}
		if curWidth+addWidth > width && len(current.groups) > 0 {
			lines = append(lines, current)
			current = statusLine{}
			curWidth = 0
			addWidth = gw
		}
		current.groups = append(current.groups, g)
		curWidth += addWidth
	}
	if len(current.groups) > 0 || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

func lineWidthGroups(groups []string) int {
	width := 0
	for i, g := range groups {
		if i > 0 {
			width += 2
		}
		width += displayWidth(g)
	}
	return width
}

func drawStatusLines(screen tcell.Screen, lines []statusLine) {
	w, h := screen.Size()
	if h <= 0 || len(lines) == 0 {
		return
	}
	if len(lines) > h {
		lines = lines[len(lines)-h:]
	}
	style := tcell.StyleDefault.Reverse(true)
	startY := h - len(lines)
	for i, line := range lines {
		y := startY + i
		writeText(screen, 0, y, padRight("", w), style)
		writeText(screen, 0, y, truncate(strings.Join(line.groups, "  "), w), style)
		if line.right != "" {
			rightText := truncate(line.right, w)
			writeText(screen, max(0, w-displayWidth(rightText)), y, rightText, style.Bold(true))
		}
	}
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// tailTruncate keeps the end of s, which is where the user is typing.
func tailTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(runes[i:])
}

func padRight(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-displayWidth(s))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
