package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, name, generation, rank, major, minor, score, created_at`

func scanCandidate(row pgx.Row) (*CandidateRecord, error) {
	var r CandidateRecord
	err := row.Scan(&r.ID, &r.Name, &r.Generation, &r.Rank, &r.Major, &r.Minor, &r.Score, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveCandidate inserts or replaces a candidate's row in its generation
func (db *DB) SaveCandidate(ctx context.Context, r *CandidateRecord) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO key_profile_candidates (id, name, generation, rank, major, minor, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id, generation) DO UPDATE SET name = $2, rank = $4,
		     major = $5, minor = $6, score = $7
		 RETURNING created_at`,
		r.ID, r.Name, r.Generation, r.Rank, r.Major, r.Minor, r.Score,
	).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", r.Name, err)
	}
	return nil
}

// SaveGeneration stores every record in one transaction. Rows already
// stored for other generations are left untouched.
func (db *DB) SaveGeneration(ctx context.Context, records []CandidateRecord) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(
			`INSERT INTO key_profile_candidates (id, name, generation, rank, major, minor, score)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id, generation) DO UPDATE SET name = $2, rank = $4,
			     major = $5, minor = $6, score = $7`,
			r.ID, r.Name, r.Generation, r.Rank, r.Major, r.Minor, r.Score,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save generation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit generation: %w", err)
	}
	log.Printf("[DB] Saved %d candidates", len(records))
	return nil
}

// GetCandidate retrieves a candidate's row in one generation. Returns nil, nil when absent.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID, generation int) (*CandidateRecord, error) {
	r, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM key_profile_candidates WHERE id = $1 AND generation = $2`,
		id, generation))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return r, nil
}

// CandidateHistory retrieves every stored generation of one candidate, oldest first
func (db *DB) CandidateHistory(ctx context.Context, id uuid.UUID) ([]CandidateRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM key_profile_candidates
		 WHERE id = $1
		 ORDER BY generation ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get history of candidate %s: %w", id, err)
	}
	return collectCandidates(rows)
}

// ListGeneration retrieves a generation's candidates, best first. Unranked
// rows follow in name order.
func (db *DB) ListGeneration(ctx context.Context, generation int) ([]CandidateRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM key_profile_candidates
		 WHERE generation = $1
		 ORDER BY rank ASC NULLS LAST, name ASC`, generation)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation %d: %w", generation, err)
	}
	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]CandidateRecord, error) {
	defer rows.Close()

	var records []CandidateRecord
	for rows.Next() {
		r, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return records, nil
}

// LatestGeneration returns the highest stored generation, or -1 when empty
func (db *DB) LatestGeneration(ctx context.Context) (int, error) {
	var gen int
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(generation), -1) FROM key_profile_candidates`).Scan(&gen)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest generation: %w", err)
	}
	return gen, nil
}
