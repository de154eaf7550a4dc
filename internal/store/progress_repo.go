package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsarma/maestro/internal/progression"
)

// progressRepo implements ProgressRepo over raw SQL.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) SaveAll(ctx context.Context, records []progression.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_progress`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO session_progress (item_id, status, started_at, completed_at, score, attempts)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.ItemID,
			rec.Status.String(),
			nullTime(rec.StartedAt),
			nullTime(rec.CompletedAt),
			nullInt(rec.Score),
			rec.Attempts,
		)
		if err != nil {
			return fmt.Errorf("insert progress for %s: %w", rec.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context) ([]progression.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_id, status, started_at, completed_at, score, attempts
		FROM session_progress
		ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var records []progression.Record
	for rows.Next() {
		var (
			rec         progression.Record
			status      string
			startedAt   sql.NullTime
			completedAt sql.NullTime
			score       sql.NullInt64
		)
		if err := rows.Scan(&rec.ItemID, &status, &startedAt, &completedAt, &score, &rec.Attempts); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		rec.Status = progression.ParseStatus(status)
		if startedAt.Valid {
			t := startedAt.Time
			rec.StartedAt = &t
		}
		if completedAt.Valid {
			t := completedAt.Time
			rec.CompletedAt = &t
		}
		if score.Valid {
			v := int(score.Int64)
			rec.Score = &v
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress rows: %w", err)
	}
	return records, nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_progress`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
