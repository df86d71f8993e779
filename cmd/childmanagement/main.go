package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/thecheetosfingers/Childmanagement/internal/activity"
	"github.com/thecheetosfingers/Childmanagement/internal/auth"
	"github.com/thecheetosfingers/Childmanagement/internal/blob"
	"github.com/thecheetosfingers/Childmanagement/internal/child"
	"github.com/thecheetosfingers/Childmanagement/internal/config"
	"github.com/thecheetosfingers/Childmanagement/internal/db"
	httpx "github.com/thecheetosfingers/Childmanagement/internal/http"
	"github.com/thecheetosfingers/Childmanagement/internal/jobs"
	"github.com/thecheetosfingers/Childmanagement/internal/logger"
	"github.com/thecheetosfingers/Childmanagement/internal/media"
)

func main() {
	cfg, _ := config.Load()

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	var (
		gdb *gorm.DB
		gw  activity.Gateway = activity.Unconfigured{}
	)
	if cfg.Configured() {
		gdb, err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			zlog.Fatalw("db connect failed", "err", err)
		}
		if err := db.AutoMigrateAndIndexes(gdb); err != nil {
			zlog.Fatalw("db migrate failed", "err", err)
		}
		gw = &activity.Store{DB: gdb}
	} else {
		zlog.Warn("DATABASE_URL not set; serving advisory state on all data routes")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store   blob.Store
		mediaFS http.Handler
	)
	if cfg.GCSBucket != "" {
		store, err = blob.NewGCS(ctx, cfg.GCSBucket, cfg.GCSCredentials)
		if err != nil {
			zlog.Fatalw("blob store init failed", "err", err)
		}
	} else {
		fsStore, err := blob.NewFS(cfg.MediaDir, cfg.MediaBaseURL)
		if err != nil {
			zlog.Fatalw("blob store init failed", "err", err)
		}
		store = fsStore
		mediaFS = fsStore.Handler()
	}
	resolver := &media.Resolver{Store: store, Log: zlog}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, gdb, jwtSvc, gw, resolver, mediaFS, zlog)

	if gdb != nil {
		jobsRepo := &jobs.Repo{DB: gdb}
		worker := &jobs.Worker{
			ID:       "worker-1",
			Repo:     jobsRepo,
			DB:       gdb,
			Children: &child.Service{DB: gdb},
			Log:      zlog,
		}
		go worker.Run(ctx)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zlog.Infow("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatalw("server failed", "err", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
