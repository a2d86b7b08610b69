package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-analytics/config"
	httpapi "restaurant-analytics/internal/api/http"
	"restaurant-analytics/internal/service"
	"restaurant-analytics/internal/storage"
	"restaurant-analytics/internal/store"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analytics HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, cfg)
	},
}

func newSource(ctx context.Context, cfg *config.Config) (store.Source, func(), error) {
	switch cfg.DataSource {
	case config.SourceS3:
		client, err := config.NewS3Client(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewS3Source(client, cfg.S3Bucket, cfg.S3Prefix), func() {}, nil
	case config.SourcePostgres:
		db := config.MustInitPostgres(cfg)
		return storage.NewPostgresSource(db), func() { db.Close() }, nil
	default:
		return storage.NewFileSource(cfg.DataDir), func() {}, nil
	}
}

func buildRouter(snapshots *store.Store) http.Handler {
	return httpapi.NewRouter(httpapi.NewHandler(service.NewAnalyticsService(snapshots)))
}

func runServer(ctx context.Context, cfg *config.Config) error {
	source, closeSource, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()
	log.Printf("Using %s snapshot source, TTL %s", cfg.DataSource, cfg.SnapshotTTL)

	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		source = storage.NewRedisCachedSource(rdb, source, cfg.SnapshotTTL)
		log.Printf("Sharing snapshots through Redis at %s:%s", cfg.RedisHost, cfg.RedisPort)
	}

	snapshots := store.New(source, store.WithTTL(cfg.SnapshotTTL))
	// A failed warm-up is not fatal; the next request retries the load.
	if _, err := snapshots.Snapshot(ctx); err != nil {
		log.Printf("ERROR: initial snapshot load failed: %v", err)
	}

	if cfg.KafkaEnabled() {
		reader := config.NewKafkaReader(cfg)
		defer reader.Close()
		go service.NewRefreshConsumer(reader, snapshots).Start(ctx)
	}

	server := httpapi.NewServer(cfg.HTTPAddr, buildRouter(snapshots))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpapi.StartServer(server)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
