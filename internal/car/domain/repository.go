package domain

import "context"

// Repository maps cars to document-store operations. Every operation is a
// single attempt that absorbs store failures into sentinel returns (empty
// slice, nil, false) with logging; errors never cross this boundary. The
// layer above decides whether a sentinel becomes a client-facing error.
type Repository interface {
	// List returns every decodable car. A store failure yields an empty
	// slice; an undecodable document is skipped without aborting the batch.
	List(ctx context.Context) []Car

	// Get returns nil for a malformed identifier, an absent document, or a
	// store failure alike.
	Get(ctx context.Context, id string) *Car

	// Create persists a new document keyed by car.ID, with the identifier
	// excluded from the payload.
	Create(ctx context.Context, car *Car) bool

	// Update merges the car's fields into the existing document (partial
	// merge, unlike Create's wholesale replace).
	Update(ctx context.Context, id string, car *Car) bool

	// Delete removes the document idempotently: deleting an absent key
	// still reports success.
	Delete(ctx context.Context, id string) bool
}
