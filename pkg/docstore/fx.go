package docstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/carinspectinator/car-service/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Module dials the process-wide Firestore client once at startup and closes
// it on shutdown. Consumers receive the Store interface, never the raw
// client.
var Module = fx.Module("docstore",
	fx.Provide(
		NewClient,
		NewFirestore,
	),
)

// NewClient dials Firestore using Application Default Credentials, or a
// service-account key file when one is configured.
func NewClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.GoogleProjectID, opts...)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing firestore client")
			return client.Close()
		},
	})

	log.Info("firestore client created", zap.String("project", cfg.GoogleProjectID))
	return client, nil
}
