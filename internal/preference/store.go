// Package preference holds the in-memory editor for a user's food preferences.
//
// A Store owns three ordered lists (likes, dislikes, allergies). Within each
// list no two entries are equal ignoring case; the casing of the first entry
// added wins. The store does no I/O: callers build one from a snapshot, apply
// edits, and hand Snapshot() to whatever persists it.
//
// A Store is not safe for concurrent use.
package preference

import (
	"slices"
	"strings"

	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

// Store is a mutable set of preference lists.
type Store struct {
	lists map[model.Section][]string
}

// New creates a Store seeded with a copy of snapshot.
//
// Seeding goes through Add, so a snapshot that already contains blanks or
// case-insensitive duplicates comes out normalised.
func New(snapshot model.Preferences) *Store {
	s := &Store{lists: make(map[model.Section][]string, len(model.Sections))}
	for _, sec := range model.Sections {
		s.lists[sec] = []string{}
	}
	for _, v := range snapshot.Likes {
		s.Add(model.SectionLikes, v)
	}
	for _, v := range snapshot.Dislikes {
		s.Add(model.SectionDislikes, v)
	}
	for _, v := range snapshot.Allergies {
		s.Add(model.SectionAllergies, v)
	}
	return s
}

// Add appends the trimmed value to section and reports whether it was accepted.
//
// Blank input and values already present (case-insensitively) are ignored.
// Callers clear their input buffer only when Add returns true.
func (s *Store) Add(section model.Section, raw string) bool {
	list, ok := s.lists[section]
	if !ok {
		return false
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return false
	}
	if slices.ContainsFunc(list, func(existing string) bool {
		return strings.EqualFold(existing, value)
	}) {
		return false
	}
	s.lists[section] = append(list, value)
	return true
}

// Remove deletes the first entry in section exactly equal to value.
// Matching is case-sensitive: it targets the stored form. Missing values are
// a no-op; the result reports whether anything was removed.
func (s *Store) Remove(section model.Section, value string) bool {
	list, ok := s.lists[section]
	if !ok {
		return false
	}
	i := slices.Index(list, value)
	if i < 0 {
		return false
	}
	s.lists[section] = slices.Delete(list, i, i+1)
	return true
}

// Values returns a copy of one section's entries.
func (s *Store) Values(section model.Section) []string {
	return slices.Clone(s.lists[section])
}

// Snapshot returns a deep copy of all three lists. Empty lists are non-nil so
// they encode as [] rather than null.
func (s *Store) Snapshot() model.Preferences {
	return model.Preferences{
		Likes:     s.copyOf(model.SectionLikes),
		Dislikes:  s.copyOf(model.SectionDislikes),
		Allergies: s.copyOf(model.SectionAllergies),
	}
}

func (s *Store) copyOf(section model.Section) []string {
	out := make([]string, len(s.lists[section]))
	copy(out, s.lists[section])
	return out
}
