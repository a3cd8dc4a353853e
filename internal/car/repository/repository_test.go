package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/carinspectinator/car-service/internal/config"
	"github.com/carinspectinator/car-service/pkg/docstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	collections map[string]*fakeCollection
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: map[string]*fakeCollection{}}
}

func (s *fakeStore) Collection(name string) docstore.Collection {
	if _, ok := s.collections[name]; !ok {
		s.collections[name] = &fakeCollection{docs: map[string]map[string]any{}}
	}
	return s.collections[name]
}

type fakeCollection struct {
	docs map[string]map[string]any

	listErr  error
	getErr   error
	writeErr error
}

func (c *fakeCollection) All(ctx context.Context) ([]docstore.Document, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	out := make([]docstore.Document, 0, len(c.docs))
	for id, data := range c.docs {
		out = append(out, docstore.Document{ID: id, Data: data})
	}
	return out, nil
}

func (c *fakeCollection) Doc(id string) docstore.Doc {
	return &fakeDoc{coll: c, id: id}
}

type fakeDoc struct {
	coll *fakeCollection
	id   string
}

func (d *fakeDoc) Get(ctx context.Context) (docstore.Document, error) {
	if d.coll.getErr != nil {
		return docstore.Document{}, d.coll.getErr
	}
	data, ok := d.coll.docs[d.id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: d.id, Data: data}, nil
}

func (d *fakeDoc) Set(ctx context.Context, data map[string]any) error {
	if d.coll.writeErr != nil {
		return d.coll.writeErr
	}
	d.coll.docs[d.id] = data
	return nil
}

func (d *fakeDoc) Merge(ctx context.Context, data map[string]any) error {
	if d.coll.writeErr != nil {
		return d.coll.writeErr
	}
	existing, ok := d.coll.docs[d.id]
	if !ok {
		existing = map[string]any{}
	}
	for k, v := range data {
		existing[k] = v
	}
	d.coll.docs[d.id] = existing
	return nil
}

func (d *fakeDoc) Delete(ctx context.Context) error {
	if d.coll.writeErr != nil {
		return d.coll.writeErr
	}
	delete(d.coll.docs, d.id)
	return nil
}

type fakeSigner struct {
	urls map[string]string
}

func (s *fakeSigner) SignModelURL(ctx context.Context, volumeID string) string {
	return s.urls[volumeID]
}

func newRepo(t *testing.T) (domain.Repository, *fakeCollection, *fakeSigner) {
	t.Helper()

	store := newFakeStore()
	signer := &fakeSigner{urls: map[string]string{}}
	repo := Provide(Params{
		Store:  store,
		Signer: signer,
		Log:    zap.NewNop(),
		Cfg:    config.Config{CarsCollection: "cars"},
	})
	return repo, store.collections["cars"], signer
}

func carFixture(volumeID string) domain.Car {
	return domain.Car{
		ID:       uuid.NewString(),
		Make:     "BMW",
		Model:    "M3",
		VolumeID: volumeID,
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo, _, _ := newRepo(t)
	car := carFixture("")

	require.True(t, repo.Create(context.Background(), &car))

	got := repo.Get(context.Background(), car.ID)
	require.NotNil(t, got)
	assert.Equal(t, car, *got)
}

func TestGetInvalidID(t *testing.T) {
	repo, _, _ := newRepo(t)

	assert.Nil(t, repo.Get(context.Background(), "not-a-uuid"))
}

func TestGetAbsentDocument(t *testing.T) {
	repo, _, _ := newRepo(t)

	assert.Nil(t, repo.Get(context.Background(), uuid.NewString()))
}

func TestGetStoreFailure(t *testing.T) {
	repo, coll, _ := newRepo(t)
	coll.getErr = errors.New("store unavailable")

	assert.Nil(t, repo.Get(context.Background(), uuid.NewString()))
}

func TestGetUndecodableDocument(t *testing.T) {
	repo, coll, _ := newRepo(t)
	id := uuid.NewString()
	coll.docs[id] = map[string]any{"make": 42, "model": "M3"}

	assert.Nil(t, repo.Get(context.Background(), id))
}

func TestGetAttachesModelURL(t *testing.T) {
	repo, _, signer := newRepo(t)
	signer.urls["BMW_M4_f82"] = "https://signed.example/models/BMW_M4_f82.usdz"

	car := carFixture("BMW_M4_f82")
	require.True(t, repo.Create(context.Background(), &car))

	got := repo.Get(context.Background(), car.ID)
	require.NotNil(t, got)
	assert.Equal(t, "https://signed.example/models/BMW_M4_f82.usdz", got.ModelURL)
}

func TestGetLeavesModelURLEmptyWhenAssetAbsent(t *testing.T) {
	repo, _, _ := newRepo(t)

	car := carFixture("BMW_M4_f82")
	require.True(t, repo.Create(context.Background(), &car))

	got := repo.Get(context.Background(), car.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.ModelURL)
}

func TestListReturnsAllCars(t *testing.T) {
	repo, _, _ := newRepo(t)
	for range 3 {
		car := carFixture("")
		require.True(t, repo.Create(context.Background(), &car))
	}

	assert.Len(t, repo.List(context.Background()), 3)
}

func TestListDegradesToEmptyOnStoreFailure(t *testing.T) {
	repo, coll, _ := newRepo(t)
	coll.listErr = errors.New("store unavailable")

	cars := repo.List(context.Background())
	assert.NotNil(t, cars)
	assert.Empty(t, cars)
}

func TestListSkipsUndecodableDocuments(t *testing.T) {
	repo, coll, _ := newRepo(t)
	good := carFixture("")
	require.True(t, repo.Create(context.Background(), &good))
	coll.docs[uuid.NewString()] = map[string]any{"make": "BMW"} // missing model

	cars := repo.List(context.Background())
	require.Len(t, cars, 1)
	assert.Equal(t, good.ID, cars[0].ID)
}

func TestCreateExcludesIdentifierFromPayload(t *testing.T) {
	repo, coll, _ := newRepo(t)
	car := carFixture("")
	require.True(t, repo.Create(context.Background(), &car))

	assert.NotContains(t, coll.docs[car.ID], "id")
}

func TestCreateStoreFailure(t *testing.T) {
	repo, coll, _ := newRepo(t)
	coll.writeErr = errors.New("store unavailable")
	car := carFixture("")

	assert.False(t, repo.Create(context.Background(), &car))
}

func TestUpdateMergesFields(t *testing.T) {
	repo, coll, _ := newRepo(t)
	car := carFixture("")
	car.Blurb = "original blurb"
	require.True(t, repo.Create(context.Background(), &car))

	updated := car
	updated.Model = "M4"
	require.True(t, repo.Update(context.Background(), car.ID, &updated))

	assert.Equal(t, "M4", coll.docs[car.ID]["model"])
	assert.Equal(t, "original blurb", coll.docs[car.ID]["blurb"])
}

func TestUpdateStoreFailure(t *testing.T) {
	repo, coll, _ := newRepo(t)
	coll.writeErr = errors.New("store unavailable")
	car := carFixture("")

	assert.False(t, repo.Update(context.Background(), car.ID, &car))
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo, _, _ := newRepo(t)
	car := carFixture("")
	require.True(t, repo.Create(context.Background(), &car))

	assert.True(t, repo.Delete(context.Background(), car.ID))
	assert.True(t, repo.Delete(context.Background(), car.ID))
}

func TestDeleteStoreFailure(t *testing.T) {
	repo, coll, _ := newRepo(t)
	coll.writeErr = errors.New("store unavailable")

	assert.False(t, repo.Delete(context.Background(), uuid.NewString()))
}
