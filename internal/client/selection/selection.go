// Package selection holds the client's multi-select state and list filters.
// Everything here is pure in-memory bookkeeping; no I/O.
package selection

import "sort"

// Set tracks selected row ids.
type Set struct {
	ids map[int64]struct{}
}

func NewSet() *Set {
	return &Set{ids: make(map[int64]struct{})}
}

func (s *Set) Toggle(id int64) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll selects exactly the visible rows, or clears the selection when
// every visible row is already selected. Rows filtered out of view are never
// retained invisibly.
func (s *Set) ToggleAll(visible []int64) {
	if len(visible) > 0 && s.containsAll(visible) {
		s.Clear()
		return
	}
	s.ids = make(map[int64]struct{}, len(visible))
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
}

func (s *Set) containsAll(ids []int64) bool {
	for _, id := range ids {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

func (s *Set) Clear() {
	s.ids = make(map[int64]struct{})
}

func (s *Set) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the selection in ascending order.
func (s *Set) IDs() []int64 {
	result := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
