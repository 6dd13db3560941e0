package shows

import "context"

// Repository is the storage contract every backend implements.
// All returns shows ordered by id. Missing ids yield ErrNotFound.
type Repository interface {
	All(ctx context.Context, filters Filters) ([]Show, error)
	ByID(ctx context.Context, id int) (*Show, error)
	Create(ctx context.Context, cmd ShowCommand) (*Show, error)
	UpdateByID(ctx context.Context, id int, cmd ShowCommand) error
	DeleteByID(ctx context.Context, id int) error
}
