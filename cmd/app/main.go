package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitlead/cmd/fx/account_fx"
	"fitlead/cmd/fx/config_fx"
	"fitlead/cmd/fx/controllers_fx"
	"fitlead/cmd/fx/db_fx"
	"fitlead/cmd/fx/logger_fx"
	"fitlead/cmd/fx/memcache_fx"
	"fitlead/cmd/fx/session_fx"
	"fitlead/cmd/fx/submission_fx"
	"fitlead/cmd/fx/visit_fx"
	"fitlead/internal/api/controllers"
	"fitlead/internal/config"
	"fitlead/internal/services"
	"fitlead/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		session_fx.Module,
		account_fx.Module,
		submission_fx.Module,
		visit_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Sessions services.SessionServiceInterface
	Recorder *services.VisitRecorder

	AccountController    *controllers.AccountController
	SubmissionController *controllers.SubmissionController
	VisitController      *controllers.VisitController
	HealthController     *controllers.HealthController
	StaticController     *controllers.StaticController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(gin.Recovery())
	if p.Config.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.VisitLogger(p.Recorder))

	RegisterRoutes(r, Routes{
		Sessions:   p.Sessions,
		Logger:     p.Logger,
		Account:    p.AccountController,
		Submission: p.SubmissionController,
		Visit:      p.VisitController,
		Health:     p.HealthController,
		Static:     p.StaticController,
		Metrics:    p.Config.MetricsEnabled,
	})

	return r
}

type Routes struct {
	Sessions services.SessionServiceInterface
	Logger   *zap.Logger

	Account    *controllers.AccountController
	Submission *controllers.SubmissionController
	Visit      *controllers.VisitController
	Health     *controllers.HealthController
	Static     *controllers.StaticController

	Metrics bool
}

func RegisterRoutes(r *gin.Engine, rt Routes) {
	r.GET("/healthz", rt.Health.Health)
	r.GET("/readyz", rt.Health.Ready)
	if rt.Metrics {
		r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	}

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(rt.Sessions, rt.Logger))

	authGroup := api.Group("/auth")
	authGroup.POST("/register", rt.Account.Register)
	authGroup.POST("/login", rt.Account.Login)
	authGroup.POST("/logout", rt.Account.Logout)

	api.GET("/me", rt.Account.Me)
	api.POST("/submissions", rt.Submission.CreateSubmission)

	admin := api.Group("", middleware.RequireAdmin())
	admin.GET("/submissions", rt.Submission.ListSubmissions)
	admin.GET("/submissions/:id", rt.Submission.GetSubmission)
	admin.PUT("/submissions/:id", rt.Submission.UpdateSubmission)
	admin.DELETE("/submissions/:id", rt.Submission.DeleteSubmission)
	admin.GET("/visits", rt.Visit.GetVisits)

	r.NoRoute(rt.Static.NotFound)
}
