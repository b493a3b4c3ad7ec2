package postgres

import (
	"context"
	"database/sql"

	"eventcollective/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{
		DB: db,
	}
}

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.EventID, a.UserID, a.CreatedAt).Scan(&a.ID)
	if err != nil && isUniqueViolation(err) {
		// attendees_event_id_user_id_key backs the one-signup-per-user rule.
		return domain.ErrAlreadySignedUp
	}
	return err
}

func (r *attendeeRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendees WHERE event_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.AttendeeWithUser, error) {
	query := `
		SELECT a.id, a.event_id, a.user_id, a.created_at, u.id, u.email, u.name, u.last_name, u.created_at, u.updated_at
		FROM attendees a
		JOIN users u ON u.id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attendees := make([]*domain.AttendeeWithUser, 0)
	for rows.Next() {
		a := &domain.Attendee{}
		u := &domain.User{}
		if err := rows.Scan(&a.ID, &a.EventID, &a.UserID, &a.CreatedAt, &u.ID, &u.Email, &u.Name, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, &domain.AttendeeWithUser{Attendee: a, User: u})
	}
	return attendees, rows.Err()
}
