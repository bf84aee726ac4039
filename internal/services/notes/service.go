package notes

import (
	"context"
	"errors"
	"log/slog"
)

const (
	// DefaultLimit is the page size applied when a list request names none.
	DefaultLimit = 50
	// MaxLimit is the largest page size a caller may request.
	MaxLimit = 200
)

// Service handles notes business logic: validation boundaries, the
// partial-update merge rule, and translating storage outcomes into the
// domain error taxonomy.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new notes service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateNoteRequest represents a note creation request. A nil Tags slice
// means "no tags set"; a non-nil empty slice is an explicit empty tag set.
// Tag values may not contain the separator, keeping the encoding lossless.
type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,min=1,max=255" example:"Meeting Notes"`
	Content string   `json:"content" example:"Remember to discuss the quarterly targets"`
	Tags    []string `json:"tags" validate:"omitempty,dive,excludesall=0x2C"`
}

// UpdateNoteRequest represents a partial note update. Only non-nil fields
// are applied; a supplied Tags value replaces the stored tags entirely.
type UpdateNoteRequest struct {
	Title   *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255" example:"Updated Meeting Notes"`
	Content *string  `json:"content,omitempty" example:"Updated content for the meeting"`
	Tags    []string `json:"tags,omitempty" validate:"omitempty,dive,excludesall=0x2C"`
}

// ListNotesRequest represents a list notes request. Q and Tag are
// case-insensitive substring filters; Tag matches against the raw joined
// tag string, so a value straddling the separator can still match.
type ListNotesRequest struct {
	Q     string `query:"q"     validate:"omitempty,max=256" example:"meeting"`
	Tag   string `query:"tag"   validate:"omitempty,max=256" example:"work"`
	Skip  int    `query:"skip"  validate:"omitempty,min=0" example:"0"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=200" example:"50"`
}

// Create inserts a new note and returns it with its generated id and
// timestamps.
func (s *Service) Create(ctx context.Context, req CreateNoteRequest) (*NoteResponse, error) {
	note := &Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    EncodeTags(req.Tags),
	}

	if err := s.repo.Create(ctx, note); err != nil {
		s.log.Error("failed to create note", "error", err)
		return nil, err
	}

	return toResponse(note), nil
}

// List retrieves notes matching the request filters, most recently
// updated first. An empty result is a success.
func (s *Service) List(ctx context.Context, req ListNotesRequest) ([]*NoteResponse, error) {
	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}

	rows, err := s.repo.List(ctx, req)
	if err != nil {
		s.log.Error("failed to list notes", "error", err)
		return nil, err
	}

	resp := make([]*NoteResponse, 0, len(rows))
	for _, n := range rows {
		resp = append(resp, toResponse(n))
	}
	return resp, nil
}

// Get retrieves a single note by id.
func (s *Service) Get(ctx context.Context, id int64) (*NoteResponse, error) {
	note, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			s.log.Info("note not found", "note_id", id)
			return nil, ErrNoteNotFound
		}
		s.log.Error("failed to get note", "error", err, "note_id", id)
		return nil, err
	}
	return toResponse(note), nil
}

// Update applies a partial update. Fields absent from the request stay
// untouched; a present Tags value, the empty list included, replaces the
// stored tags. updated_at is refreshed on every successful write.
func (s *Service) Update(ctx context.Context, id int64, req UpdateNoteRequest) (*NoteResponse, error) {
	patch := UpdateNote{
		Title:   req.Title,
		Content: req.Content,
		Tags:    EncodeTags(req.Tags),
	}

	note, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			s.log.Info("note not found for update", "note_id", id)
			return nil, ErrNoteNotFound
		}
		s.log.Error("failed to update note", "error", err, "note_id", id)
		return nil, err
	}

	return toResponse(note), nil
}

// Delete permanently removes a note. There is no retention.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			s.log.Info("note not found for delete", "note_id", id)
			return ErrNoteNotFound
		}
		s.log.Error("failed to delete note", "error", err, "note_id", id)
		return err
	}
	return nil
}
