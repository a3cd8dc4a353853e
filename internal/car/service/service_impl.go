package service

import (
	"context"
	"strings"

	"github.com/carinspectinator/car-service/internal/car/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("car.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) []domain.Car {
	return s.repo.List(ctx)
}

// Get turns the repository's flattened "absent" sentinel into a typed
// not-found error for the HTTP layer.
func (s *Service) Get(ctx context.Context, id string) (domain.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Car{}, domain.ErrInvalidID
	}

	car := s.repo.Get(ctx, id)
	if car == nil {
		return domain.Car{}, domain.ErrNotFound
	}
	return *car, nil
}

func (s *Service) Create(ctx context.Context, car domain.Car) (domain.Car, error) {
	car, err := domain.NewCar(car)
	if err != nil {
		return domain.Car{}, err
	}

	if !s.repo.Create(ctx, &car) {
		return domain.Car{}, domain.ErrStore
	}
	return car, nil
}

func (s *Service) Update(ctx context.Context, id string, car domain.Car) (domain.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Car{}, domain.ErrInvalidID
	}

	// The identifier is immutable: the path id wins over any id in the body.
	car.ID = id
	if err := car.Validate(); err != nil {
		return domain.Car{}, err
	}

	if existing := s.repo.Get(ctx, id); existing == nil {
		return domain.Car{}, domain.ErrNotFound
	}
	if !s.repo.Update(ctx, id, &car) {
		return domain.Car{}, domain.ErrStore
	}

	updated := s.repo.Get(ctx, id)
	if updated == nil {
		return domain.Car{}, domain.ErrStore
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	if !s.repo.Delete(ctx, id) {
		return domain.ErrStore
	}
	return nil
}
