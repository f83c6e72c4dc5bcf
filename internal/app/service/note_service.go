package service

import (
	"context"
	"time"

	"memo_api/internal/domain/model"
	"memo_api/internal/domain/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

type NoteService struct {
	noteRepo repository.NoteRepository
}

func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func (s *NoteService) CreateNote(ctx context.Context, ownerID int64, req CreateNoteRequest) (*NoteResponse, error) {
	note := &model.Note{
		Title:   req.Title,
		Content: req.Content,
		OwnerID: ownerID,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	resp := NewNoteResponse(note)
	return &resp, nil
}

// ListNotes returns the caller's notes in creation order. skip and limit are
// clamped to sane values so a hostile query string cannot dump the table.
func (s *NoteService) ListNotes(ctx context.Context, ownerID int64, skip, limit int) ([]NoteResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	notes, err := s.noteRepo.ListByOwner(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, NewNoteResponse(&notes[i]))
	}
	return resp, nil
}

// GetNote fails with common.ErrNotFound both when the note is absent and when
// it belongs to another owner.
func (s *NoteService) GetNote(ctx context.Context, noteID, ownerID int64) (*NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	resp := NewNoteResponse(note)
	return &resp, nil
}

// DeleteNote removes the note if the caller owns it; otherwise
// common.ErrNotFound, never a hint that the note exists.
func (s *NoteService) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	return s.noteRepo.Delete(ctx, noteID, ownerID)
}
