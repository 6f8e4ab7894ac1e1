package tui

import (
	"github.com/baaaaaaaka/skill-eval/internal/pick"
)

type mode string

const (
	modeSingle mode = "single"
	modeMulti  mode = "multi"
)

type sessionState int

const (
	stateActive sessionState = iota
	stateConfirmed
	stateCancelled
)

const (
	focusList   = "list"
	focusSearch = "search"
)

// session is the state of one selector invocation. Rows are the rendered
// view of the filtered items; they carry their own checked marks and are
// thrown away on every refilter, so chosen is the source of truth.
type session struct {
	mode      mode
	title     string
	items     []pick.Item
	filter    string
	focus     string
	list      listState
	chosen    *pick.Selection
	rows      []row
	state     sessionState
	activated string
	mouseDown bool
}

func newSession(m mode, title string, items []pick.Item) *session {
	s := &session{
		mode:   m,
		title:  title,
		items:  items,
		focus:  focusList,
		chosen: pick.NewSelection(),
	}
	s.rebuildRows()
	return s
}

func (s *session) visible() []pick.Item {
	return pick.Filter(s.items, s.filter)
}

func (s *session) rebuildRows() {
	visible := s.visible()
	s.rows = make([]row, 0, len(visible))
	for _, it := range visible {
		s.rows = append(s.rows, row{
			id:      it.ID(),
			label:   it.DisplayText(),
			checked: s.chosen.Has(it.ID()),
		})
	}
	s.list.clamp(len(s.rows))
}

func (s *session) checkedRowIDs() []string {
	var ids []string
	for _, r := range s.rows {
		if r.checked {
			ids = append(ids, r.id)
		}
	}
	return ids
}

func (s *session) rowIndex(id string) int {
	for i, r := range s.rows {
		if r.id == id {
			return i
		}
	}
	return -1
}

func (s *session) highlightedID() (string, bool) {
	if len(s.rows) == 0 {
		return "", false
	}
	s.list.clamp(len(s.rows))
	return s.rows[s.list.selected].id, true
}

func (s *session) lookup(id string) (pick.Item, bool) {
	for _, it := range s.items {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}

func (s *session) textChanged(query string) {
	if s.state != stateActive {
		return
	}
	s.chosen.Snapshot(s.checkedRowIDs())
	s.filter = query
	s.list = listState{}
	s.rebuildRows()
}

func (s *session) focusSearch() {
	if s.state == stateActive {
		s.focus = focusSearch
	}
}

func (s *session) submitSearch() {
	if s.state == stateActive {
		s.focus = focusList
	}
}

func (s *session) cancel() {
	if s.state == stateActive {
		s.state = stateCancelled
	}
}

// activate confirms a single-choice session with id. The id is resolved
// against all items, not only the visible ones.
func (s *session) activate(id string) {
	if s.state != stateActive || s.mode != modeSingle {
		return
	}
	if _, ok := s.lookup(id); !ok {
		return
	}
	s.activated = id
	s.state = stateConfirmed
}

func (s *session) toggle(id string) {
	if s.state != stateActive || s.mode != modeMulti {
		return
	}
	idx := s.rowIndex(id)
	if idx < 0 {
		return
	}
	s.rows[idx].checked = s.chosen.Toggle(id)
}

func (s *session) selectAll() {
	if s.state != stateActive || s.mode != modeMulti {
		return
	}
	ids := make([]string, 0, len(s.rows))
	for i := range s.rows {
		ids = append(ids, s.rows[i].id)
		s.rows[i].checked = true
	}
	s.chosen.SelectAll(ids)
}

func (s *session) confirm() {
	if s.state != stateActive || s.mode != modeMulti {
		return
	}
	s.chosen.Snapshot(s.checkedRowIDs())
	s.state = stateConfirmed
}

func (s *session) singleResult() (string, bool) {
	if s.state != stateConfirmed || s.mode != modeSingle {
		return "", false
	}
	it, ok := s.lookup(s.activated)
	if !ok {
		return "", false
	}
	return it.SourcePath(), true
}

func (s *session) multiResult() []string {
	if s.state != stateConfirmed || s.mode != modeMulti {
		return nil
	}
	return pick.Paths(pick.Resolve(s.chosen, s.items))
}
