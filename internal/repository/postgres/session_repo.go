package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventcollective/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

const sessionColumns = `id, event_id, title, description, slug, session_type, status, proposed_by, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(&s.ID, &s.EventID, &s.Title, &s.Description, &s.Slug, &s.SessionType, &s.Status, &s.ProposedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (event_id, title, description, slug, session_type, status, proposed_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.EventID, s.Title, s.Description, s.Slug, s.SessionType, s.Status, s.ProposedBy, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("slug %q: %w", s.Slug, domain.ErrInvalidInput)
	}
	return err
}

func (r *sessionRepository) GetByEventSlug(ctx context.Context, eventID, slug string, status domain.SessionStatus) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE event_id = $1 AND slug = $2 AND status = $3
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, eventID, slug, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByEvent(ctx context.Context, eventID string, status domain.SessionStatus, opts domain.ListOptions) ([]*domain.Session, error) {
	where := []string{"event_id = $1", "status = $2"}
	args := []any{eventID, status}
	if opts.Search != "" {
		where = append(where, "(title ILIKE $3 OR description ILIKE $3)")
		args = append(args, "%"+opts.Search+"%")
	}
	query := fmt.Sprintf(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE %s
		ORDER BY %s
	`, strings.Join(where, " AND "), orderColumn(opts))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, id string, upd domain.SessionUpdate) (*domain.Session, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	if upd.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *upd.Title)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.SessionType != nil {
		setClauses = append(setClauses, fmt.Sprintf("session_type = $%d", n))
		args = append(args, *upd.SessionType)
		n++
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE sessions SET %s
		WHERE id = $%d
		RETURNING `+sessionColumns+`
	`, strings.Join(setClauses, ", "), n)
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) ListSpeakersByEvent(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	query := `
		SELECT s.id, s.title, s.slug, s.session_type, u.id, u.name, u.last_name
		FROM sessions s
		JOIN users u ON u.id = s.proposed_by
		WHERE s.event_id = $1 AND s.status = $2
		ORDER BY s.title ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, domain.StatusAccepted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		sp := &domain.Speaker{}
		if err := rows.Scan(&sp.SessionID, &sp.SessionTitle, &sp.SessionSlug, &sp.SessionType, &sp.UserID, &sp.Name, &sp.LastName); err != nil {
			return nil, err
		}
		speakers = append(speakers, sp)
	}
	return speakers, rows.Err()
}
