package car

import (
	"github.com/carinspectinator/car-service/internal/assets"
	"github.com/carinspectinator/car-service/internal/car/repository"
	"github.com/carinspectinator/car-service/internal/car/service"
	"go.uber.org/fx"
)

var Module = fx.Module("car.service",
	fx.Provide(
		func(s *assets.Signer) repository.ModelURLSigner { return s },
		repository.Provide,
		service.New,
	),
)
