package store

import (
	"context"
	"database/sql"
	"fmt"
)

// achievementRepo implements AchievementRepo over raw SQL.
type achievementRepo struct {
	db *sql.DB
}

func (r *achievementRepo) Save(ctx context.Context, row AchievementRow) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO achievements (id, title, description, unlocked_at)
		VALUES (?, ?, ?, ?)`,
		row.ID, row.Title, row.Description, row.UnlockedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save achievement %s: %w", row.ID, err)
	}
	return nil
}

func (r *achievementRepo) List(ctx context.Context) ([]AchievementRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, unlocked_at
		FROM achievements
		ORDER BY unlocked_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	var out []AchievementRow
	for rows.Next() {
		var row AchievementRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scan achievement row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievement rows: %w", err)
	}
	return out, nil
}

func (r *achievementRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM achievements`); err != nil {
		return fmt.Errorf("clear achievements: %w", err)
	}
	return nil
}
