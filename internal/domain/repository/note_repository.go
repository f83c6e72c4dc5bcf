package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"memo_api/internal/common"
	"memo_api/internal/domain/model"
)

// NoteRepository scopes every read and delete by owner in the query itself,
// so a note owned by someone else is indistinguishable from a missing one.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]model.Note, error)
	FindByID(ctx context.Context, id, ownerID int64) (*model.Note, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type pgNoteRepository struct {
	db *sql.DB
}

func NewPgNoteRepository(db *sql.DB) NoteRepository {
	return &pgNoteRepository{db: db}
}

func (r *pgNoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (title, content, owner_id)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, note.Title, note.Content, note.OwnerID).Scan(
		&note.ID, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Create: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's notes ordered by id ascending, which is
// creation order, so pagination is stable across requests.
func (r *pgNoteRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]model.Note, error) {
	query := `SELECT id, title, content, created_at, updated_at, owner_id
	          FROM notes WHERE owner_id = $1
	          ORDER BY id ASC
	          LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("pgNoteRepository.ListByOwner query: %w", err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt, &n.OwnerID); err != nil {
			return nil, fmt.Errorf("pgNoteRepository.ListByOwner scan: %w", err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgNoteRepository.ListByOwner rows.Err: %w", err)
	}
	return notes, nil
}

func (r *pgNoteRepository) FindByID(ctx context.Context, id, ownerID int64) (*model.Note, error) {
	query := `SELECT id, title, content, created_at, updated_at, owner_id
	          FROM notes WHERE id = $1 AND owner_id = $2`
	note := &model.Note{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt, &note.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgNoteRepository.FindByID: %w", err)
	}
	return note, nil
}

func (r *pgNoteRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
