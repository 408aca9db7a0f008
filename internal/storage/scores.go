package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

const (
	insertScoreSQL = "INSERT INTO scores (game_id, score) VALUES (?, ?)"
	selectScoreSQL = "SELECT id, game_id, score, created_at FROM scores WHERE game_id = ? ORDER BY score DESC, id"
)

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the history of one variant.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// SaveScore appends a run to the history and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(insertScoreSQL, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordGameOver stores the end of a run in one transaction. The last
// score preference is always overwritten; the history only gains a row
// for positive scores.
func (s *Store) RecordGameOver(gameID string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec(upsertPrefSQL, PrefLastScore, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("storage: cannot store last score: %w", err)
	}
	if score > 0 {
		if _, err := tx.Exec(insertScoreSQL, gameID, score); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit game over: %w", err)
	}
	return nil
}

// TopScores returns up to limit runs of a variant, best first. Ties keep
// the order they were played in. A limit of 0 or less returns every run.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	query, args := selectScoreSQL, []any{gameID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best run of a variant, 0 when it has none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes the history of a variant.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

const statsSQL = `SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
	FROM scores`

// scanStats reads one row of statsSQL.
func scanStats(scan func(...any) error) (*GameStats, error) {
	var st GameStats
	var lastPlayed any
	if err := scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
		return nil, err
	}
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}

// GetGameStats aggregates the history of a variant. A variant without
// runs yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	rows, err := s.db.Query(statsSQL+" WHERE game_id = ? GROUP BY game_id", gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
		}
		return &GameStats{GameID: gameID}, nil
	}
	st, err := scanStats(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
	}
	return st, nil
}

// GetAllGamesStats aggregates every variant that has been played, keyed
// by game id.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(statsSQL + " GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		st, err := scanStats(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.GameID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
