package postgres

import (
	"context"
	"database/sql"

	"eventcollective/internal/domain"
)

type tagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{
		DB: db,
	}
}

func (r *tagRepository) ListAll(ctx context.Context) ([]*domain.Tag, error) {
	query := `SELECT id, name FROM tags ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		t := &domain.Tag{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *tagRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN event_tags et ON et.tag_id = t.id
		WHERE et.event_id = $1
		ORDER BY t.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		t := &domain.Tag{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
