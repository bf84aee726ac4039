package notes

import "context"

// Repository defines the storage operations the notes service relies on.
// Implementations classify backend failures into the package's sentinel
// errors; raw driver errors never cross this boundary.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	Get(ctx context.Context, id int64) (*Note, error)
	List(ctx context.Context, req ListNotesRequest) ([]*Note, error)
	Update(ctx context.Context, id int64, patch UpdateNote) (*Note, error)
	Delete(ctx context.Context, id int64) error
}
