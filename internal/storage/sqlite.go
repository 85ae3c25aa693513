// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-yahtzee/internal/rules"
	"github.com/vovakirdan/tui-yahtzee/internal/scorecard"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// GameResult is a finished game as stored: the totals plus the
// per-category breakdown.
type GameResult struct {
	ID         int64
	Total      int
	UpperTotal int
	UpperBonus int
	Yahtzee    bool // whether the yahtzee category paid out
	Categories map[rules.Category]int
	CreatedAt  time.Time
}

// ResultFromCard builds a GameResult from a completed scorecard.
func ResultFromCard(card *scorecard.Card) GameResult {
	categories := make(map[rules.Category]int, rules.NumCategories)
	for _, cat := range rules.Categories() {
		categories[cat] = card.Score(cat)
	}
	return GameResult{
		Total:      card.Total(),
		UpperTotal: card.UpperTotal(),
		UpperBonus: card.UpperBonus(),
		Yahtzee:    card.Score(rules.YahtzeeCat) > 0,
		Categories: categories,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			total INTEGER NOT NULL,
			upper_total INTEGER NOT NULL,
			upper_bonus INTEGER NOT NULL DEFAULT 0,
			yahtzee INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_total ON games(total DESC);

		CREATE TABLE IF NOT EXISTS category_scores (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			score INTEGER NOT NULL,
			PRIMARY KEY (game_id, category)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and its category breakdown.
// Returns the ID of the inserted game.
func (s *Store) SaveGame(result GameResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	yahtzee := 0
	if result.Yahtzee {
		yahtzee = 1
	}
	res, err := tx.Exec(
		"INSERT INTO games (total, upper_total, upper_bonus, yahtzee) VALUES (?, ?, ?, ?)",
		result.Total, result.UpperTotal, result.UpperBonus, yahtzee,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for cat, score := range result.Categories {
		if _, err := tx.Exec(
			"INSERT INTO category_scores (game_id, category, score) VALUES (?, ?, ?)",
			id, cat.String(), score,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save category score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}

	return id, nil
}

// TopGames retrieves the N best finished games, ordered by total
// descending. Category breakdowns are not loaded; use GameByID.
func (s *Store) TopGames(limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, total, upper_total, upper_bonus, yahtzee, created_at
		 FROM games
		 ORDER BY total DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		r, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameByID retrieves one game including its category breakdown.
// Returns nil if no such game exists.
func (s *Store) GameByID(id int64) (*GameResult, error) {
	row := s.db.QueryRow(
		`SELECT id, total, upper_total, upper_bonus, yahtzee, created_at
		 FROM games WHERE id = ?`,
		id,
	)

	var r GameResult
	var yahtzee int
	var createdAt any
	err := row.Scan(&r.ID, &r.Total, &r.UpperTotal, &r.UpperBonus, &yahtzee, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	r.Yahtzee = yahtzee != 0
	r.CreatedAt = parseTimestamp(createdAt)

	rows, err := s.db.Query(
		"SELECT category, score FROM category_scores WHERE game_id = ?",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query category scores: %w", err)
	}
	defer rows.Close()

	r.Categories = make(map[rules.Category]int, rules.NumCategories)
	for rows.Next() {
		var name string
		var score int
		if err := rows.Scan(&name, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cat, err := rules.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("storage: stored game %d: %w", id, err)
		}
		r.Categories[cat] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// HighScore returns the best game total. Returns 0 if no games exist.
func (s *Store) HighScore() (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(total) FROM games").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}

	return int(total.Int64), nil
}

// ClearGames deletes all stored game results.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM category_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear category scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all finished games.
type Stats struct {
	GamesCount   int
	HighScore    int
	AvgScore     float64
	BonusGames   int // games that earned the upper bonus
	YahtzeeGames int // games where the yahtzee category paid out
	LastPlayed   time.Time
}

// GetStats retrieves aggregated statistics across all games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(total), 0), COALESCE(AVG(total), 0),
		        COALESCE(SUM(CASE WHEN upper_bonus > 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(yahtzee), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BonusGames, &stats.YahtzeeGames)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM games ORDER BY created_at DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

func scanGame(rows *sql.Rows) (GameResult, error) {
	var r GameResult
	var yahtzee int
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Total, &r.UpperTotal, &r.UpperBonus, &yahtzee, &createdAt); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Yahtzee = yahtzee != 0
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// parseTimestamp handles both time.Time and string timestamps from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
