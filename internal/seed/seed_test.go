package seed

import (
	"context"
	"testing"

	"github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingRepo struct {
	created []domain.Car
	fail    bool
}

func (r *recordingRepo) List(ctx context.Context) []domain.Car           { return nil }
func (r *recordingRepo) Get(ctx context.Context, id string) *domain.Car { return nil }

func (r *recordingRepo) Create(ctx context.Context, car *domain.Car) bool {
	if r.fail {
		return false
	}
	r.created = append(r.created, *car)
	return true
}

func (r *recordingRepo) Update(ctx context.Context, id string, car *domain.Car) bool { return true }
func (r *recordingRepo) Delete(ctx context.Context, id string) bool                  { return true }

func TestCarsAreValid(t *testing.T) {
	cars := Cars()
	require.Len(t, cars, 5)

	for _, car := range cars {
		_, err := domain.NewCar(car)
		assert.NoError(t, err, "%s %s", car.Make, car.Model)
	}
}

func TestCarsHaveVolumeIDs(t *testing.T) {
	expected := map[string]string{
		"Golf GTI": "vw_golf_5_gti",
		"M3":       "BMW_M4_f82",
		"RS7":      "2020_Audi_RS7_Sportback",
		"G63":      "2020_Mercedes-Benz_G-Class_AMG_G63",
		"Supra":    "Toyota_Supra",
	}
	for _, car := range Cars() {
		assert.Equal(t, expected[car.Model], car.VolumeID, car.Model)
	}
}

func TestRunAssignsIdentifiers(t *testing.T) {
	repo := &recordingRepo{}

	count := Run(context.Background(), repo, zap.NewNop())
	assert.Equal(t, 5, count)
	require.Len(t, repo.created, 5)
	for _, car := range repo.created {
		assert.NotEmpty(t, car.ID)
	}
}

func TestRunReportsFailedWrites(t *testing.T) {
	repo := &recordingRepo{fail: true}

	assert.Equal(t, 0, Run(context.Background(), repo, zap.NewNop()))
}
