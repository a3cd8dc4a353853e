package main

import (
	"github.com/carinspectinator/car-service/internal/assets"
	"github.com/carinspectinator/car-service/internal/car"
	"github.com/carinspectinator/car-service/internal/config"
	"github.com/carinspectinator/car-service/internal/observability"
	"github.com/carinspectinator/car-service/internal/server"
	"github.com/carinspectinator/car-service/pkg/blobstore"
	"github.com/carinspectinator/car-service/pkg/docstore"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,

		docstore.Module,
		blobstore.Module,
		assets.Module,

		car.Module,
		server.Module,
	)
	app.Run()
}
