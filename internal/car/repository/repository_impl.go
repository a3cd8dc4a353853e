package repository

import (
	"context"
	"errors"

	"github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/carinspectinator/car-service/internal/config"
	"github.com/carinspectinator/car-service/pkg/docstore"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ModelURLSigner is the slice of the asset signer the repository uses to
// enrich records on read.
type ModelURLSigner interface {
	SignModelURL(ctx context.Context, volumeID string) string
}

type repo struct {
	cars   docstore.Collection
	signer ModelURLSigner
	log    *zap.Logger
}

type Params struct {
	fx.In

	Store  docstore.Store
	Signer ModelURLSigner
	Log    *zap.Logger
	Cfg    config.Config
}

func Provide(p Params) domain.Repository {
	return &repo{
		cars:   p.Store.Collection(p.Cfg.CarsCollection),
		signer: p.Signer,
		log:    p.Log.Named("car.repository"),
	}
}

func (r *repo) List(ctx context.Context) []domain.Car {
	docs, err := r.cars.All(ctx)
	if err != nil {
		r.log.Error("listing cars failed", zap.Error(err))
		return []domain.Car{}
	}

	cars := make([]domain.Car, 0, len(docs))
	for _, doc := range docs {
		car, err := domain.CarFromDoc(doc.ID, doc.Data)
		if err != nil {
			// One malformed document must not abort the batch.
			r.log.Error("skipping undecodable car document", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		r.attachModelURL(ctx, &car)
		cars = append(cars, car)
	}

	r.log.Info("listed cars", zap.Int("count", len(cars)))
	return cars
}

func (r *repo) Get(ctx context.Context, id string) *domain.Car {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("invalid car id", zap.String("id", id))
		return nil
	}

	doc, err := r.cars.Doc(id).Get(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		r.log.Info("car not found", zap.String("id", id))
		return nil
	}
	if err != nil {
		r.log.Error("fetching car failed", zap.String("id", id), zap.Error(err))
		return nil
	}

	car, err := domain.CarFromDoc(doc.ID, doc.Data)
	if err != nil {
		r.log.Error("decoding car document failed", zap.String("id", id), zap.Error(err))
		return nil
	}

	r.attachModelURL(ctx, &car)
	return &car
}

func (r *repo) Create(ctx context.Context, car *domain.Car) bool {
	// The identifier lives only in the document key.
	if err := r.cars.Doc(car.ID).Set(ctx, car.DocData()); err != nil {
		r.log.Error("creating car failed", zap.String("id", car.ID), zap.Error(err))
		return false
	}
	r.log.Info("created car", zap.String("id", car.ID))
	return true
}

func (r *repo) Update(ctx context.Context, id string, car *domain.Car) bool {
	if err := r.cars.Doc(id).Merge(ctx, car.DocData()); err != nil {
		r.log.Error("updating car failed", zap.String("id", id), zap.Error(err))
		return false
	}
	r.log.Info("updated car", zap.String("id", id))
	return true
}

func (r *repo) Delete(ctx context.Context, id string) bool {
	if err := r.cars.Doc(id).Delete(ctx); err != nil {
		r.log.Error("deleting car failed", zap.String("id", id), zap.Error(err))
		return false
	}
	r.log.Info("deleted car", zap.String("id", id))
	return true
}

// attachModelURL derives a fresh signed URL on every read. A still-empty URL
// (asset absent, signing failure) is not a failure of the read itself.
func (r *repo) attachModelURL(ctx context.Context, car *domain.Car) {
	if car.VolumeID == "" || car.ModelURL != "" {
		return
	}
	car.ModelURL = r.signer.SignModelURL(ctx, car.VolumeID)
}
