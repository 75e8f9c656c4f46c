package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve attempt.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	StateJSON  string
	Scramble   *string
	Solution   string
	MoveCount  int
	Strategy   string
	Solved     bool
	DurationMs int64
}

// SolveRepository provides CRUD operations for solve attempts.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve attempt and returns its ID.
func (r *SolveRepository) Create(stateJSON, scramble, solution, strategy string, moveCount int, solved bool, duration time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	solvedInt := 0
	if solved {
		solvedInt = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, state_json, scramble, solution, move_count, strategy, solved, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), stateJSON, scramblePtr, solution, moveCount, strategy, solvedInt, duration.Milliseconds())

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// List returns the most recent solve attempts, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, state_json, scramble, solution, move_count, strategy, solved, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Get fetches a solve attempt by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, state_json, scramble, solution, move_count, strategy, solved, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve %s: %w", solveID, err)
	}
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (Solve, error) {
	var s Solve
	var createdAt string
	var solved int
	if err := row.Scan(&s.SolveID, &createdAt, &s.StateJSON, &s.Scramble, &s.Solution, &s.MoveCount, &s.Strategy, &solved, &s.DurationMs); err != nil {
		return Solve{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Solve{}, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}
	s.CreatedAt = t
	s.Solved = solved != 0
	return s, nil
}
