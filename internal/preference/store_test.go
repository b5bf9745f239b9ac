package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

func TestAdd_CaseInsensitiveDedupe(t *testing.T) {
	s := New(model.Preferences{})

	assert.True(t, s.Add(model.SectionLikes, "Pasta"))
	assert.False(t, s.Add(model.SectionLikes, "pasta"))
	assert.False(t, s.Add(model.SectionLikes, "PASTA "))

	assert.Equal(t, []string{"Pasta"}, s.Values(model.SectionLikes))
}

func TestAdd_TrimsWhitespace(t *testing.T) {
	s := New(model.Preferences{})

	assert.True(t, s.Add(model.SectionDislikes, "  Olives \t"))
	assert.Equal(t, []string{"Olives"}, s.Values(model.SectionDislikes))
}

func TestAdd_BlankIsNoop(t *testing.T) {
	s := New(model.Preferences{Likes: []string{"Tacos"}})

	for _, raw := range []string{"", "   ", "\t\n"} {
		assert.False(t, s.Add(model.SectionLikes, raw), "raw=%q", raw)
	}
	assert.Len(t, s.Values(model.SectionLikes), 1)
}

func TestAdd_SectionsAreIndependent(t *testing.T) {
	s := New(model.Preferences{})

	assert.True(t, s.Add(model.SectionLikes, "Peanuts"))
	assert.True(t, s.Add(model.SectionAllergies, "peanuts"))

	snap := s.Snapshot()
	assert.Equal(t, []string{"Peanuts"}, snap.Likes)
	assert.Equal(t, []string{"peanuts"}, snap.Allergies)
	assert.Empty(t, snap.Dislikes)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := New(model.Preferences{})
	for _, v := range []string{"Sushi", "Curry", "Ramen"} {
		s.Add(model.SectionLikes, v)
	}

	assert.Equal(t, []string{"Sushi", "Curry", "Ramen"}, s.Values(model.SectionLikes))
}

func TestAdd_UnknownSection(t *testing.T) {
	s := New(model.Preferences{})

	assert.False(t, s.Add(model.Section("favourites"), "Pizza"))
	assert.Equal(t, model.Preferences{Likes: []string{}, Dislikes: []string{}, Allergies: []string{}}, s.Snapshot())
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		start       []string
		remove      string
		want        []string
		wantRemoved bool
	}{
		{
			name:        "removes exact match",
			start:       []string{"Peanuts", "Shellfish"},
			remove:      "Peanuts",
			want:        []string{"Shellfish"},
			wantRemoved: true,
		},
		{
			name:        "missing value is a no-op",
			start:       []string{"Peanuts", "Shellfish"},
			remove:      "Gluten",
			want:        []string{"Peanuts", "Shellfish"},
			wantRemoved: false,
		},
		{
			name:        "matching is case-sensitive",
			start:       []string{"Peanuts"},
			remove:      "peanuts",
			want:        []string{"Peanuts"},
			wantRemoved: false,
		},
		{
			name:        "empty section",
			start:       nil,
			remove:      "Peanuts",
			want:        []string{},
			wantRemoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(model.Preferences{Allergies: tt.start})

			removed := s.Remove(model.SectionAllergies, tt.remove)

			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, tt.want, s.Snapshot().Allergies)
		})
	}
}

func TestRemoveThenAddAgain(t *testing.T) {
	s := New(model.Preferences{Likes: []string{"Pasta"}})

	s.Remove(model.SectionLikes, "Pasta")
	assert.True(t, s.Add(model.SectionLikes, "pasta"))
	assert.Equal(t, []string{"pasta"}, s.Values(model.SectionLikes))
}

func TestNew_NormalisesSnapshot(t *testing.T) {
	s := New(model.Preferences{
		Likes:    []string{"Pasta", " pasta", "", "Tacos"},
		Dislikes: []string{"  "},
	})

	snap := s.Snapshot()
	assert.Equal(t, []string{"Pasta", "Tacos"}, snap.Likes)
	assert.Equal(t, []string{}, snap.Dislikes)
	assert.Equal(t, []string{}, snap.Allergies)
}

func TestSnapshot_IsACopy(t *testing.T) {
	seed := model.Preferences{Likes: []string{"Pasta"}}
	s := New(seed)

	seed.Likes[0] = "changed"
	snap := s.Snapshot()
	snap.Likes[0] = "also changed"

	assert.Equal(t, []string{"Pasta"}, s.Values(model.SectionLikes))
}
