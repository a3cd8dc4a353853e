package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestore adapts a Firestore client to the Store interface.
func NewFirestore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) Collection(name string) Collection {
	return &firestoreCollection{ref: s.client.Collection(name)}
}

type firestoreCollection struct {
	ref *firestore.CollectionRef
}

func (c *firestoreCollection) All(ctx context.Context) ([]Document, error) {
	iter := c.ref.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (c *firestoreCollection) Doc(id string) Doc {
	return &firestoreDoc{ref: c.ref.Doc(id)}
}

type firestoreDoc struct {
	ref *firestore.DocumentRef
}

func (d *firestoreDoc) Get(ctx context.Context) (Document, error) {
	snap, err := d.ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (d *firestoreDoc) Set(ctx context.Context, data map[string]any) error {
	_, err := d.ref.Set(ctx, data)
	return err
}

func (d *firestoreDoc) Merge(ctx context.Context, data map[string]any) error {
	_, err := d.ref.Set(ctx, data, firestore.MergeAll)
	return err
}

func (d *firestoreDoc) Delete(ctx context.Context) error {
	_, err := d.ref.Delete(ctx)
	return err
}
