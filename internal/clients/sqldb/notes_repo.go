package sqldb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notes-backend/internal/services/notes"

	"gorm.io/gorm"
)

// NotesRepo implements the notes.Repository interface on the relational
// store. Every returned error is classified into the service taxonomy;
// raw driver errors never leave this package.
type NotesRepo struct {
	db *gorm.DB
}

// NewNotesRepo creates a new notes repository
func NewNotesRepo(db *gorm.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

// classify maps driver-level failures onto the service error taxonomy.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notes.ErrNoteNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", notes.ErrStorageConflict, err)
	}
	// SQLite reports every constraint class in the message text
	if strings.Contains(strings.ToLower(err.Error()), "constraint") {
		return fmt.Errorf("%w: %v", notes.ErrStorageConflict, err)
	}
	return fmt.Errorf("%w: %v", notes.ErrStorageUnavailable, err)
}

// Create inserts a note. The generated id and timestamps are written back
// into n. A single INSERT is atomic; a failed insert persists nothing.
func (r *NotesRepo) Create(ctx context.Context, n *notes.Note) error {
	return classify(r.db.WithContext(ctx).Create(n).Error)
}

// Get fetches a note by primary key.
func (r *NotesRepo) Get(ctx context.Context, id int64) (*notes.Note, error) {
	var n notes.Note
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, classify(err)
	}
	return &n, nil
}

// List composes the read query from independent optional predicates,
// ANDed together: free-text substring on title/content, substring on the
// raw joined tag string, ordering by updated_at descending (id descending
// breaks ties), then offset/limit.
func (r *NotesRepo) List(ctx context.Context, req notes.ListNotesRequest) ([]*notes.Note, error) {
	q := r.db.WithContext(ctx).Model(&notes.Note{})

	if req.Q != "" {
		like := "%" + strings.ToLower(req.Q) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	if req.Tag != "" {
		// substring match on the joined string, not a membership test on
		// decoded tags; a value straddling the separator can still match
		q = q.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(req.Tag)+"%")
	}

	var rows []*notes.Note
	err := q.Order("updated_at DESC, id DESC").
		Offset(req.Skip).
		Limit(req.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// Update applies only the supplied patch fields inside one transaction
// and returns the refreshed row. The transaction rolls back fully on any
// failure, so a failed write never leaves a partially-updated row.
func (r *NotesRepo) Update(ctx context.Context, id int64, patch notes.UpdateNote) (*notes.Note, error) {
	var n notes.Note
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&n, id).Error; err != nil {
			return err
		}

		fields := map[string]any{}
		if patch.Title != nil {
			fields["title"] = *patch.Title
		}
		if patch.Content != nil {
			fields["content"] = *patch.Content
		}
		if patch.Tags != nil {
			fields["tags"] = *patch.Tags
		}
		if len(fields) == 0 {
			return nil
		}

		// gorm refreshes updated_at alongside the supplied columns
		if err := tx.Model(&n).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&n, id).Error
	})
	if err != nil {
		return nil, classify(err)
	}
	return &n, nil
}

// Delete removes the row permanently, reporting NotFound when no row
// matched the id.
func (r *NotesRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&notes.Note{}, id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return notes.ErrNoteNotFound
	}
	return nil
}
