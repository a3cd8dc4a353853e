package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
	ErrStore     = errors.New("store_failed")
)

// Service is the boundary layer above the repository: it inspects the
// repository's sentinel returns and raises the typed errors the HTTP layer
// translates into taxonomy responses.
type Service interface {
	List(ctx context.Context) []Car
	Get(ctx context.Context, id string) (Car, error)
	Create(ctx context.Context, car Car) (Car, error)
	Update(ctx context.Context, id string, car Car) (Car, error)
	Delete(ctx context.Context, id string) error
}
