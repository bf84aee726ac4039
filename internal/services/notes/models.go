package notes

import "time"

// Note is the single persisted entity of the system, one row per note.
// Tags live in a flat comma-joined column; EncodeTags/DecodeTags convert
// between that column and the API's list form. Timestamps are filled by
// gorm on create/update, so every relational backend behaves the same.
type Note struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"size:255;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Tags      *string   `gorm:"size:512"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;index"`
}

// UpdateNote carries the fields a partial update may change. A nil field
// is left untouched; a non-nil field replaces the stored value entirely,
// Tags included (replace, never merge). Tags holds the already-encoded
// string form.
type UpdateNote struct {
	Title   *string
	Content *string
	Tags    *string
}

// NoteResponse is the JSON shape of a note on the wire.
type NoteResponse struct {
	ID        int64      `json:"id" example:"1"`
	Title     string     `json:"title" example:"Meeting Notes"`
	Content   string     `json:"content" example:"Remember to discuss the quarterly targets"`
	Tags      []string   `json:"tags" example:"work,urgent"`
	CreatedAt *time.Time `json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt *time.Time `json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// toResponse converts a stored row into its API form. Tags marshal to
// null when the column is NULL or empty, to a JSON array otherwise.
func toResponse(n *Note) *NoteResponse {
	resp := &NoteResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    DecodeTags(n.Tags),
	}
	if !n.CreatedAt.IsZero() {
		created := n.CreatedAt
		resp.CreatedAt = &created
	}
	if !n.UpdatedAt.IsZero() {
		updated := n.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
