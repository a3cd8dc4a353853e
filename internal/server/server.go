package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cardomain "github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/carinspectinator/car-service/internal/config"
	obslogger "github.com/carinspectinator/car-service/internal/observability/logger"
	obstracing "github.com/carinspectinator/car-service/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware())
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "car-service"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	carSvc cardomain.Service
}

type Params struct {
	fx.In

	Gin    *gin.Engine
	Cfg    config.Config
	CarSvc cardomain.Service
}

func NewServer(p Params) *Server {
	s := &Server{
		engine: p.Gin,
		cfg:    p.Cfg,
		carSvc: p.CarSvc,
	}

	s.registerCarRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerCarRoutes() {
	cars := s.engine.Group("/v1/cars")

	cars.GET("", s.ListCars)
	cars.POST("", s.CreateCar)
	cars.GET("/:carId", s.GetCarByID)
	cars.PUT("/:carId", s.UpdateCar)
	cars.DELETE("/:carId", s.DeleteCar)
}

func run(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
