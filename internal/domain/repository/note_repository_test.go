package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"memo_api/internal/common"
	"memo_api/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockNoteRepo(t *testing.T) (*pgNoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &pgNoteRepository{db: db}, mock
}

func TestPgNoteRepository_Create(t *testing.T) {
	t.Parallel()
	repo, mock := newMockNoteRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notes`)).
		WithArgs("t", "c", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	note := &model.Note{Title: "t", Content: "c", OwnerID: 1}
	err := repo.Create(context.Background(), note)
	require.NoError(t, err)
	require.Equal(t, int64(10), note.ID)
	require.Equal(t, note.CreatedAt, note.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgNoteRepository_ListByOwner_OrdersByID(t *testing.T) {
	t.Parallel()
	repo, mock := newMockNoteRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at", "owner_id"}).
		AddRow(int64(3), "third", "c3", now, now, int64(1)).
		AddRow(int64(4), "fourth", "c4", now, now, int64(1))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY id ASC`)).
		WithArgs(int64(1), 2, 2).
		WillReturnRows(rows)

	notes, err := repo.ListByOwner(context.Background(), 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, int64(3), notes[0].ID)
	require.Equal(t, int64(4), notes[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgNoteRepository_FindByID_NotOwnedIsNotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockNoteRepo(t)

	// Owner filter in the query: another user's note yields zero rows.
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND owner_id = $2`)).
		WithArgs(int64(10), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at", "owner_id"}))

	_, err := repo.FindByID(context.Background(), 10, 2)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgNoteRepository_Delete(t *testing.T) {
	t.Parallel()
	repo, mock := newMockNoteRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE id = $1 AND owner_id = $2`)).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 10, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgNoteRepository_Delete_AbsentIsNotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockNoteRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE id = $1 AND owner_id = $2`)).
		WithArgs(int64(99), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99, 1)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
