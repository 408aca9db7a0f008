package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Pref is a single stored preference.
type Pref struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const upsertPrefSQL = `
	INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

// String returns the stored preference or def when the key is unset.
func (s *Store) String(key, def string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read preference %q: %w", key, err)
	}
	return value, nil
}

// SetString stores a preference, replacing any previous value.
func (s *Store) SetString(key, value string) error {
	if _, err := s.db.Exec(upsertPrefSQL, key, value); err != nil {
		return fmt.Errorf("storage: cannot write preference %q: %w", key, err)
	}
	return nil
}

// Int returns an integer preference or def when unset or not a number.
func (s *Store) Int(key string, def int) (int, error) {
	raw, err := s.String(key, "")
	if err != nil {
		return def, err
	}
	if raw == "" {
		return def, nil
	}
	v, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return def, fmt.Errorf("storage: preference %q is not an integer: %w", key, convErr)
	}
	return v, nil
}

// SetInt stores an integer preference.
func (s *Store) SetInt(key string, value int) error {
	return s.SetString(key, strconv.Itoa(value))
}

// DeletePref removes a preference. Missing keys are not an error.
func (s *Store) DeletePref(key string) error {
	if _, err := s.db.Exec("DELETE FROM preferences WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete preference %q: %w", key, err)
	}
	return nil
}

// Prefs lists all stored preferences ordered by key.
func (s *Store) Prefs() ([]Pref, error) {
	rows, err := s.db.Query("SELECT key, value, updated_at FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []Pref
	for rows.Next() {
		var p Pref
		var updatedAt any
		if err := rows.Scan(&p.Key, &p.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan preference: %w", err)
		}
		p.UpdatedAt = parseTime(updatedAt)
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return prefs, nil
}
