package tui

import (
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

func handleKey(s *session, ev *tcell.EventKey, viewH int) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyESC:
		s.cancel()
		return
	}

	if s.focus == focusSearch {
		handleSearchKey(s, ev)
		return
	}

	if isEnter(ev) {
		id, ok := s.highlightedID()
		if s.mode == modeSingle {
			if ok {
				s.activate(id)
			}
			return
		}
		s.confirm()
		return
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q', 'Q':
			s.cancel()
			return
		case '/':
			s.focusSearch()
			return
		case ' ':
			if id, ok := s.highlightedID(); ok {
				s.toggle(id)
			}
			return
		case 'a':
			s.selectAll()
			return
		}
	}

	applyListNavigation(&s.list, len(s.rows), viewH, ev)
}

func handleSearchKey(s *session, ev *tcell.EventKey) {
	if isEnter(ev) {
		s.submitSearch()
		return
	}
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		s.submitSearch()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.filter == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(s.filter)
		s.textChanged(s.filter[:len(s.filter)-size])
	case tcell.KeyCtrlU:
		if s.filter != "" {
			s.textChanged("")
		}
	case tcell.KeyRune:
		ch := ev.Rune()
		if unicode.IsPrint(ch) {
			s.textChanged(s.filter + string(ch))
		}
	}
}

func isEnter(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyCtrlJ || ev.Key() == tcell.KeyCtrlM {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		return ev.Rune() == '\n' || ev.Rune() == '\r'
	}
	return false
}

// handleMouse reacts to the press edge of the primary button. A click
// on a row highlights it in single mode and toggles it in multi mode; a
// click on the already highlighted row activates it in single mode.
func handleMouse(s *session, ev *tcell.EventMouse, lay layout) {
	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		s.list.selected = clamp(s.list.selected-1, 0, max(0, len(s.rows)-1))
		s.list.ensureVisible(lay.list.h-2, len(s.rows))
		return
	case btn&tcell.WheelDown != 0:
		s.list.selected = clamp(s.list.selected+1, 0, max(0, len(s.rows)-1))
		s.list.ensureVisible(lay.list.h-2, len(s.rows))
		return
	}

	if btn&tcell.Button1 == 0 {
		s.mouseDown = false
		return
	}
	if s.mouseDown {
		return
	}
	s.mouseDown = true

	x, y := ev.Position()
	if lay.search.contains(x, y) {
		s.focusSearch()
		return
	}
	idx, ok := rowAt(lay.list, s.list.scroll, len(s.rows), x, y)
	if !ok {
		return
	}
	s.focus = focusList
	if s.mode == modeMulti {
		s.list.selected = idx
		s.toggle(s.rows[idx].id)
		return
	}
	if s.list.selected == idx {
		s.activate(s.rows[idx].id)
		return
	}
	s.list.selected = idx
}

func applyListNavigation(state *listState, nItems int, viewH int, ev *tcell.EventKey) {
	if nItems <= 0 {
		state.selected = 0
		state.scroll = 0
		return
	}
	switch ev.Key() {
	case tcell.KeyUp:
		state.selected = clamp(state.selected-1, 0, nItems-1)
	case tcell.KeyDown:
		state.selected = clamp(state.selected+1, 0, nItems-1)
	case tcell.KeyPgUp:
		state.selected = clamp(state.selected-max(1, viewH), 0, nItems-1)
	case tcell.KeyPgDn:
		state.selected = clamp(state.selected+max(1, viewH), 0, nItems-1)
	case tcell.KeyHome:
		state.selected = 0
	case tcell.KeyEnd:
		state.selected = nItems - 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'K':
			state.selected = clamp(state.selected-1, 0, nItems-1)
		case 'j', 'J':
			state.selected = clamp(state.selected+1, 0, nItems-1)
		case 'g':
			state.selected = 0
		case 'G':
			state.selected = nItems - 1
		default:
			return
		}
	default:
		return
	}
	state.ensureVisible(viewH, nItems)
}
