package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventmanagement/internal/domain"
)

type tagRepository struct {
	DB *sql.DB
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
// Tags live on events.tags; the catalog is computed from them.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) ListByAccountID(ctx context.Context, accountID string, limit int) ([]domain.TagCount, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT t.tag, COUNT(*) FROM events e
		 CROSS JOIN LATERAL unnest(e.tags) AS t(tag)
		 WHERE e.account_id = $1 AND e.status = 'active'
		 GROUP BY t.tag
		 ORDER BY COUNT(*) DESC, t.tag
		 LIMIT $2`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.TagCount{}
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Name, &tc.Events); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
