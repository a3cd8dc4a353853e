// Package docstore narrows the document-store client to the operations the
// catalog uses: stream a collection, and get/set/merge/delete a document by
// key. The narrow interface keeps repositories testable against in-memory
// fakes.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound reports an absent document on Get.
var ErrNotFound = errors.New("document not found")

// Document is a stored payload together with the key it was fetched from.
type Document struct {
	ID   string
	Data map[string]any
}

type Store interface {
	Collection(name string) Collection
}

type Collection interface {
	// All streams every document in the collection.
	All(ctx context.Context) ([]Document, error)
	Doc(id string) Doc
}

type Doc interface {
	Get(ctx context.Context) (Document, error)
	// Set replaces the document wholesale.
	Set(ctx context.Context, data map[string]any) error
	// Merge writes only the given fields into the existing document.
	Merge(ctx context.Context, data map[string]any) error
	// Delete is idempotent: removing an absent key is not an error.
	Delete(ctx context.Context) error
}
