package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

// newTestDB opens a fresh in-memory database that is closed when the test ends.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestProfile(t *testing.T, db *DB, prefs model.Preferences) *model.Profile {
	t.Helper()
	p := &model.Profile{Preferences: prefs}
	if err := db.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}

func equalLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCreateProfile(t *testing.T) {
	db := newTestDB(t)

	p := &model.Profile{}
	if err := db.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}

	if p.ID == "" {
		t.Error("CreateProfile() did not set ID")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("CreateProfile() did not set timestamps")
	}
}

func TestGetProfile_RoundTripKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	want := model.Preferences{
		Likes:     []string{"Sushi", "Curry", "Ramen"},
		Dislikes:  []string{"Olives"},
		Allergies: []string{"Peanuts", "Shellfish"},
	}
	created := createTestProfile(t, db, want)

	got, err := db.GetProfile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}

	if !equalLists(got.Preferences.Likes, want.Likes) {
		t.Errorf("Likes = %v, want %v", got.Preferences.Likes, want.Likes)
	}
	if !equalLists(got.Preferences.Dislikes, want.Dislikes) {
		t.Errorf("Dislikes = %v, want %v", got.Preferences.Dislikes, want.Dislikes)
	}
	if !equalLists(got.Preferences.Allergies, want.Allergies) {
		t.Errorf("Allergies = %v, want %v", got.Preferences.Allergies, want.Allergies)
	}
	if got.CreatedAt.IsZero() {
		t.Error("GetProfile() returned zero CreatedAt")
	}
}

func TestGetProfile_EmptyListsAreNotNil(t *testing.T) {
	db := newTestDB(t)
	created := createTestProfile(t, db, model.Preferences{})

	got, err := db.GetProfile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.Preferences.Likes == nil || got.Preferences.Dislikes == nil || got.Preferences.Allergies == nil {
		t.Errorf("GetProfile() returned nil lists: %+v", got.Preferences)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetProfile(context.Background(), "nonexistent-id")

	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfile_ReplacesEntries(t *testing.T) {
	db := newTestDB(t)
	p := createTestProfile(t, db, model.Preferences{
		Likes:     []string{"Pasta", "Tacos"},
		Allergies: []string{"Peanuts"},
	})

	updated, err := db.UpdateProfile(context.Background(), p.ID, func(prefs *model.Preferences) bool {
		*prefs = model.Preferences{
			Likes:    []string{"Tacos"},
			Dislikes: []string{"Liver"},
		}
		return true
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.UpdatedAt.Before(p.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v < %v", updated.UpdatedAt, p.UpdatedAt)
	}

	got, err := db.GetProfile(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if !equalLists(got.Preferences.Likes, []string{"Tacos"}) {
		t.Errorf("Likes = %v, want [Tacos]", got.Preferences.Likes)
	}
	if !equalLists(got.Preferences.Dislikes, []string{"Liver"}) {
		t.Errorf("Dislikes = %v, want [Liver]", got.Preferences.Dislikes)
	}
	if len(got.Preferences.Allergies) != 0 {
		t.Errorf("Allergies = %v, want empty", got.Preferences.Allergies)
	}
}

func TestUpdateProfile_UnchangedIsNotWritten(t *testing.T) {
	db := newTestDB(t)
	p := createTestProfile(t, db, model.Preferences{Likes: []string{"Pasta"}})

	got, err := db.UpdateProfile(context.Background(), p.ID, func(prefs *model.Preferences) bool {
		prefs.Likes = append(prefs.Likes, "Discarded")
		return false
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if !equalLists(got.Preferences.Likes, []string{"Pasta", "Discarded"}) {
		t.Errorf("returned Likes = %v, want the edited lists", got.Preferences.Likes)
	}

	stored, err := db.GetProfile(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if !equalLists(stored.Preferences.Likes, []string{"Pasta"}) {
		t.Errorf("stored Likes = %v, want [Pasta]", stored.Preferences.Likes)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	called := false

	_, err := db.UpdateProfile(context.Background(), "missing", func(*model.Preferences) bool {
		called = true
		return true
	})

	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrNotFound", err)
	}
	if called {
		t.Error("edit should not run for a missing profile")
	}
}

// Each goroutine appends its own value. Every one of them must survive, which
// only holds if the read and the write of each update are a single unit.
func TestUpdateProfile_ConcurrentEditsAreKept(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	p := createTestProfile(t, db, model.Preferences{})

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := db.UpdateProfile(context.Background(), p.ID, func(prefs *model.Preferences) bool {
				prefs.Likes = append(prefs.Likes, fmt.Sprintf("food%d", i))
				return true
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
	}

	got, err := db.GetProfile(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if len(got.Preferences.Likes) != workers {
		t.Errorf("stored %d likes, want %d: %v", len(got.Preferences.Likes), workers, got.Preferences.Likes)
	}
}

func TestProfilesAreIsolated(t *testing.T) {
	db := newTestDB(t)
	a := createTestProfile(t, db, model.Preferences{Likes: []string{"Pasta"}})
	b := createTestProfile(t, db, model.Preferences{Likes: []string{"Salad"}})

	if a.ID == b.ID {
		t.Fatalf("two profiles share ID %q", a.ID)
	}

	got, err := db.GetProfile(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if !equalLists(got.Preferences.Likes, []string{"Salad"}) {
		t.Errorf("Likes = %v, want [Salad]", got.Preferences.Likes)
	}
}
