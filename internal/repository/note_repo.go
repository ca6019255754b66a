package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Note es el registro remoto de una nota, propiedad de este store.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SectionID string    `json:"section_id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteRepository interface {
	Create(ctx context.Context, note Note) error
	UpdateContent(ctx context.Context, id, userID, content string, updatedAt time.Time) error
	ListByUser(ctx context.Context, userID string) ([]Note, error)
}

type PgNoteRepository struct {
	pool *pgxpool.Pool
}

func NewPgNoteRepository(pool *pgxpool.Pool) *PgNoteRepository {
	return &PgNoteRepository{pool: pool}
}

func (r *PgNoteRepository) Create(ctx context.Context, note Note) error {
	const query = `
		INSERT INTO notes (id, user_id, section_id, content, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		note.ID,
		note.UserID,
		note.SectionID,
		note.Content,
		note.UpdatedAt,
	)
	return err
}

func (r *PgNoteRepository) UpdateContent(ctx context.Context, id, userID, content string, updatedAt time.Time) error {
	const query = `
		UPDATE notes
		SET content = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, id, userID, content, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgNoteRepository) ListByUser(ctx context.Context, userID string) ([]Note, error) {
	const query = `
		SELECT id, user_id, section_id, content, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY section_id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.SectionID,
			&n.Content,
			&n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
