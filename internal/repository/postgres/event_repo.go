package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"eventcollective/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event, tagNames []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (title, description, slug, event_date, hosted_by, total_guest, read_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Slug, e.EventDate, e.HostedBy, e.TotalGuest, e.ReadTime, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug %q: %w", e.Slug, domain.ErrInvalidInput)
		}
		return err
	}

	for _, name := range tagNames {
		var tagID string
		err = tx.QueryRowContext(ctx, `
			INSERT INTO tags (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name).Scan(&tagID)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO event_tags (event_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, e.ID, tagID); err != nil {
			return err
		}
		e.Tags = append(e.Tags, &domain.Tag{ID: tagID, Name: name})
	}

	return tx.Commit()
}

const eventColumns = `id, title, description, slug, event_date, hosted_by, total_guest, read_time, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Slug, &e.EventDate, &e.HostedBy, &e.TotalGuest, &e.ReadTime, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE slug = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// orderColumn maps a resolved ListOptions field to a SQL order expression.
// Fields come from a ListConfig whitelist, never from raw user input.
func orderColumn(opts domain.ListOptions) string {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	return opts.OrderBy + " " + dir
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time, filter domain.EventFilter, opts domain.ListOptions, page domain.PaginationParams) ([]*domain.Event, int, error) {
	where := []string{"e.event_date > $1"}
	args := []any{now}
	n := 2
	if opts.Search != "" {
		where = append(where, fmt.Sprintf("(e.title ILIKE $%d OR e.description ILIKE $%d)", n, n))
		args = append(args, "%"+opts.Search+"%")
		n++
	}
	if filter.HostedBy != "" {
		where = append(where, fmt.Sprintf("e.hosted_by = $%d", n))
		args = append(args, filter.HostedBy)
		n++
	}
	if filter.Tag != "" {
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM event_tags et JOIN tags t ON t.id = et.tag_id WHERE et.event_id = e.id AND t.name = $%d)", n))
		args = append(args, filter.Tag)
		n++
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM events e WHERE ` + cond
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.title, e.description, e.slug, e.event_date, e.hosted_by, e.total_guest, e.read_time, e.created_at, e.updated_at
		FROM events e
		WHERE %s
		ORDER BY e.%s
		LIMIT $%d OFFSET $%d
	`, cond, orderColumn(opts), n, n+1)
	args = append(args, page.PageSize, page.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, slug string, upd domain.EventUpdate) (*domain.Event, error) {
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
	if upd.EventDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_date = $%d", n))
		args = append(args, *upd.EventDate)
		n++
	}
	if upd.TotalGuest != nil {
		setClauses = append(setClauses, fmt.Sprintf("total_guest = $%d", n))
		args = append(args, *upd.TotalGuest)
		n++
	}
	if upd.ReadTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("read_time = $%d", n))
		args = append(args, *upd.ReadTime)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetBySlug(ctx, slug)
	}
	args = append(args, slug)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE slug = $%d
		RETURNING `+eventColumns+`
	`, strings.Join(setClauses, ", "), n)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM events WHERE slug = $1`
	result, err := r.DB.ExecContext(ctx, query, slug)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
