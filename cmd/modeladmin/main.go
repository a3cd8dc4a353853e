// modeladmin is the operator CLI for the catalog: it uploads, checks, signs
// and deletes 3D model assets, and seeds the car collection.
//
// Usage:
//
//	modeladmin upload -volume vw_golf_5_gti -file ./models/vw_golf_5_gti.usdz
//	modeladmin exists -volume vw_golf_5_gti
//	modeladmin sign   -volume vw_golf_5_gti
//	modeladmin delete -volume vw_golf_5_gti
//	modeladmin seed
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/carinspectinator/car-service/internal/assets"
	"github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/carinspectinator/car-service/internal/car/repository"
	"github.com/carinspectinator/car-service/internal/config"
	obslogger "github.com/carinspectinator/car-service/internal/observability/logger"
	"github.com/carinspectinator/car-service/internal/seed"
	"github.com/carinspectinator/car-service/pkg/blobstore"
	"github.com/carinspectinator/car-service/pkg/docstore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log, err := obslogger.New(nil, obslogger.Config{
		ServiceName: "modeladmin",
		Environment: cfg.Environment,
		Version:     cfg.AppVersion,
		Format:      "console",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	ok := false
	switch os.Args[1] {
	case "upload":
		fs := flag.NewFlagSet("upload", flag.ExitOnError)
		volume := fs.String("volume", "", "volumeId of the car model")
		file := fs.String("file", "", "local path of the .usdz file")
		_ = fs.Parse(os.Args[2:])
		requireFlag(fs, "volume", *volume)
		requireFlag(fs, "file", *file)

		signer := newSigner(ctx, cfg, log)
		ok = signer.Upload(ctx, *file, *volume)

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		volume := fs.String("volume", "", "volumeId of the car model")
		_ = fs.Parse(os.Args[2:])
		requireFlag(fs, "volume", *volume)

		signer := newSigner(ctx, cfg, log)
		ok = signer.Delete(ctx, *volume)

	case "exists":
		fs := flag.NewFlagSet("exists", flag.ExitOnError)
		volume := fs.String("volume", "", "volumeId of the car model")
		_ = fs.Parse(os.Args[2:])
		requireFlag(fs, "volume", *volume)

		signer := newSigner(ctx, cfg, log)
		ok = signer.Exists(ctx, *volume)
		fmt.Println(ok)

	case "sign":
		fs := flag.NewFlagSet("sign", flag.ExitOnError)
		volume := fs.String("volume", "", "volumeId of the car model")
		_ = fs.Parse(os.Args[2:])
		requireFlag(fs, "volume", *volume)

		signer := newSigner(ctx, cfg, log)
		url := signer.SignModelURL(ctx, *volume)
		ok = url != ""
		if ok {
			fmt.Println(url)
		}

	case "seed":
		repo := newRepository(ctx, cfg, log)
		count := seed.Run(ctx, repo, log)
		log.Info("seeding complete", zap.Int("cars", count))
		ok = count == len(seed.Cars())

	default:
		usage()
		os.Exit(2)
	}

	if !ok {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: modeladmin <upload|delete|exists|sign|seed> [flags]")
}

func requireFlag(fs *flag.FlagSet, name, value string) {
	if value == "" {
		fmt.Fprintf(os.Stderr, "missing required -%s\n", name)
		fs.Usage()
		os.Exit(2)
	}
}

func clientOptions(cfg config.Config) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}
	return opts
}

func newSigner(ctx context.Context, cfg config.Config, log *zap.Logger) *assets.Signer {
	client, err := storage.NewClient(ctx, clientOptions(cfg)...)
	if err != nil {
		log.Fatal("storage client failed", zap.Error(err))
	}
	bucket := blobstore.NewGCS(client, cfg.StorageBucket)
	return assets.New(bucket, log, cfg.ModelURLExpiration)
}

func newRepository(ctx context.Context, cfg config.Config, log *zap.Logger) domain.Repository {
	fsClient, err := firestore.NewClient(ctx, cfg.GoogleProjectID, clientOptions(cfg)...)
	if err != nil {
		log.Fatal("firestore client failed", zap.Error(err))
	}
	store := docstore.NewFirestore(fsClient)

	return repository.Provide(repository.Params{
		Store:  store,
		Signer: newSigner(ctx, cfg, log),
		Log:    log,
		Cfg:    cfg,
	})
}
