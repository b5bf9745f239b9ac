package model

import (
	"time"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
)

// Section names one of the three preference lists.
type Section string

const (
	SectionLikes     Section = "likes"
	SectionDislikes  Section = "dislikes"
	SectionAllergies Section = "allergies"
)

// Sections lists every section in display order.
var Sections = []Section{SectionLikes, SectionDislikes, SectionAllergies}

// ParseSection converts a raw name (from a URL or a database row) into a Section.
// Matching is exact: "Likes" is not a section.
func ParseSection(raw string) (Section, error) {
	switch s := Section(raw); s {
	case SectionLikes, SectionDislikes, SectionAllergies:
		return s, nil
	}
	return "", apperror.ValidationFailed("section",
		"section must be one of likes, dislikes, allergies")
}

// Preferences is a snapshot of a user's food preferences.
type Preferences struct {
	Likes     []string `json:"likes"`
	Dislikes  []string `json:"dislikes"`
	Allergies []string `json:"allergies"`
}

// Profile is the persisted owner of one Preferences snapshot.
// The ID is an xid generated by the repository.
type Profile struct {
	ID          string      `json:"id"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
