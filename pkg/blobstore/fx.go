package blobstore

import (
	"context"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carinspectinator/car-service/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Module creates the process-wide GCS client once at startup and closes it
// on shutdown.
var Module = fx.Module("blobstore",
	fx.Provide(
		NewClient,
		NewModelBucket,
	),
)

func NewClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*storage.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing storage client")
			return client.Close()
		},
	})

	log.Info("storage client created", zap.String("bucket", cfg.StorageBucket))
	return client, nil
}

// NewModelBucket binds the client to the configured model bucket.
func NewModelBucket(client *storage.Client, cfg config.Config) Bucket {
	return NewGCS(client, cfg.StorageBucket)
}
