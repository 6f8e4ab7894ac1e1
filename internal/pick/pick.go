// Package pick holds the selection core shared by the terminal selectors:
// substring filtering over display text and an identity-keyed chosen set
// that survives filtering.
package pick

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateID is returned when two candidates share an identity.
var ErrDuplicateID = errors.New("duplicate item identity")

// Item is a selectable candidate. ID is the stable key used to track
// selection; it never changes while a session runs, unlike list positions.
type Item interface {
	ID() string
	SourcePath() string
	DisplayText() string
}

// Filter keeps the items whose display text contains query, ignoring case.
// The relative order of items is preserved.
func Filter[T Item](items []T, query string) []T {
	if query == "" {
		return items
	}
	n := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.DisplayText()), n) {
			out = append(out, it)
		}
	}
	return out
}

// CheckUnique reports the first identity shared by two items.
func CheckUnique[T Item](items []T) error {
	seen := make(map[string]string, len(items))
	for _, it := range items {
		id := it.ID()
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q (%s, %s)", ErrDuplicateID, id, prev, it.SourcePath())
		}
		seen[id] = it.SourcePath()
	}
	return nil
}

// IDs returns the identities of items in order.
func IDs[T Item](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}

// Paths returns the source paths of items in order.
func Paths[T Item](items []T) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SourcePath())
	}
	return out
}

// Selection is the set of chosen identities. It is owned by the
// controller; renderers only mirror it.
type Selection struct {
	chosen map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{chosen: map[string]struct{}{}}
}

// Toggle flips membership of id and reports whether it is now chosen.
func (s *Selection) Toggle(id string) bool {
	if _, ok := s.chosen[id]; ok {
		delete(s.chosen, id)
		return false
	}
	s.chosen[id] = struct{}{}
	return true
}

// SelectAll adds every visible id. Chosen ids that are not visible stay
// chosen.
func (s *Selection) SelectAll(visibleIDs []string) {
	for _, id := range visibleIDs {
		s.chosen[id] = struct{}{}
	}
}

// Snapshot merges the ids a renderer currently shows as checked. Call it
// before the visible rows are rebuilt, since a rebuild drops the
// renderer's own marks.
func (s *Selection) Snapshot(checkedIDs []string) {
	for _, id := range checkedIDs {
		s.chosen[id] = struct{}{}
	}
}

func (s *Selection) Has(id string) bool {
	_, ok := s.chosen[id]
	return ok
}

func (s *Selection) Len() int { return len(s.chosen) }

// IDs returns the chosen identities sorted lexically.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.chosen))
	for id := range s.chosen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Resolve returns the items of all whose identity is chosen, in the order
// of all.
func Resolve[T Item](s *Selection, all []T) []T {
	var out []T
	for _, it := range all {
		if s.Has(it.ID()) {
			out = append(out, it)
		}
	}
	return out
}
