package assets

import (
	"github.com/carinspectinator/car-service/internal/config"
	"github.com/carinspectinator/car-service/pkg/blobstore"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("assets",
	fx.Provide(provideSigner),
)

func provideSigner(bucket blobstore.Bucket, log *zap.Logger, cfg config.Config) *Signer {
	return New(bucket, log, cfg.ModelURLExpiration)
}
