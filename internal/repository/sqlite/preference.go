package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
	"github.com/AdanChavez79/Food-Profiler/internal/repository"
)

// compile-time check that *DB implements repository.PreferenceRepository
var _ repository.PreferenceRepository = (*DB)(nil)

// CreateProfile inserts a new profile and its entries.
// The profile's ID and timestamps are filled in place.
func (db *DB) CreateProfile(ctx context.Context, profile *model.Profile) error {
	now := time.Now().UTC()
	profile.ID = xid.New().String()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning transaction: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (id, created_at, updated_at) VALUES (?, ?, ?)`,
		profile.ID, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting profile: %w", err)
	}

	if err := insertEntries(ctx, tx, profile.ID, profile.Preferences); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing profile %s: %w", profile.ID, err)
	}
	return nil
}

// querier is the read surface shared by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// GetProfile loads a profile with its preference lists in stored order.
// Returns apperror.ErrNotFound if no profile exists with that ID.
func (db *DB) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	return getProfile(ctx, db.conn, id)
}

// UpdateProfile reads the profile, applies edit and writes the result back in
// a single transaction. The first statement takes SQLite's write lock, so
// concurrent updates to any profile run one after another and none of them
// works from a stale read.
//
// When edit returns false nothing is written and the profile is returned as
// edit left it. Returns apperror.ErrNotFound if the profile does not exist.
func (db *DB) UpdateProfile(ctx context.Context, id string, edit repository.EditFunc) (*model.Profile, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE profiles SET updated_at = updated_at WHERE id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: locking profile %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if n == 0 {
		return nil, apperror.NotFound("profile", id)
	}

	profile, err := getProfile(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if !edit(&profile.Preferences) {
		return profile, nil
	}

	profile.UpdatedAt = time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE profiles SET updated_at = ? WHERE id = ?`, profile.UpdatedAt, id,
	); err != nil {
		return nil, fmt.Errorf("sqlite: updating profile %s: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM preference_entries WHERE profile_id = ?`, id,
	); err != nil {
		return nil, fmt.Errorf("sqlite: clearing preferences for %s: %w", id, err)
	}

	if err := insertEntries(ctx, tx, id, profile.Preferences); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sqlite: committing profile %s: %w", id, err)
	}
	return profile, nil
}

func getProfile(ctx context.Context, q querier, id string) (*model.Profile, error) {
	p := model.Profile{ID: id}

	err := q.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM profiles WHERE id = ?`, id,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("profile", id)
		}
		return nil, fmt.Errorf("sqlite: getting profile %s: %w", id, err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT section, value FROM preference_entries
		 WHERE profile_id = ?
		 ORDER BY section, position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing preferences for %s: %w", id, err)
	}
	defer rows.Close()

	p.Preferences = model.Preferences{Likes: []string{}, Dislikes: []string{}, Allergies: []string{}}
	for rows.Next() {
		var section, value string
		if err := rows.Scan(&section, &value); err != nil {
			return nil, fmt.Errorf("sqlite: scanning preference row: %w", err)
		}
		sec, err := model.ParseSection(section)
		if err != nil {
			return nil, fmt.Errorf("sqlite: profile %s has bad section %q: %w", id, section, err)
		}
		switch sec {
		case model.SectionLikes:
			p.Preferences.Likes = append(p.Preferences.Likes, value)
		case model.SectionDislikes:
			p.Preferences.Dislikes = append(p.Preferences.Dislikes, value)
		case model.SectionAllergies:
			p.Preferences.Allergies = append(p.Preferences.Allergies, value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating preferences for %s: %w", id, err)
	}

	return &p, nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, profileID string, prefs model.Preferences) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO preference_entries (profile_id, section, position, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: preparing entry insert: %w", err)
	}
	defer stmt.Close()

	lists := map[model.Section][]string{
		model.SectionLikes:     prefs.Likes,
		model.SectionDislikes:  prefs.Dislikes,
		model.SectionAllergies: prefs.Allergies,
	}
	for _, sec := range model.Sections {
		for pos, value := range lists[sec] {
			if _, err := stmt.ExecContext(ctx, profileID, string(sec), pos, value); err != nil {
				return fmt.Errorf("sqlite: inserting %s entry for %s: %w", sec, profileID, err)
			}
		}
	}
	return nil
}
