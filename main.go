package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hinaltilavat/portfolio/internal/analytics"
	"github.com/hinaltilavat/portfolio/internal/config"
	"github.com/hinaltilavat/portfolio/internal/content"
	"github.com/hinaltilavat/portfolio/internal/logging"
	"github.com/hinaltilavat/portfolio/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("portfolio exited")
	}
}

// run owns every resource it opens, so deferred cleanup always happens before
// main decides the exit status.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogJSON)

	site, err := content.Load(time.Now())
	if err != nil {
		return fmt.Errorf("load page content: %w", err)
	}

	opts := server.Options{
		ViewportHeight: cfg.ViewportHeight,
		Threshold:      cfg.RevealThreshold,
		Retention:      cfg.VisitorRetention,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.TrackVisitors {
		store, err := analytics.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open analytics database %s: %w", cfg.DatabasePath, err)
		}
		defer store.Close()

		hasher, err := analytics.NewHasher()
		if err != nil {
			return fmt.Errorf("generate hashing salt: %w", err)
		}
		token, err := analytics.RandomToken()
		if err != nil {
			return fmt.Errorf("generate admin token: %w", err)
		}

		tracker := analytics.NewTracker(store, hasher)
		defer tracker.Wait()

		var cleanup sync.WaitGroup
		cleanup.Add(1)
		go func() {
			defer cleanup.Done()
			tracker.RunCleanup(ctx, cfg.VisitorRetention, 24*time.Hour)
		}()
		// runs first: stop the loop, wait for it, drain the tracker, close the store
		defer cleanup.Wait()
		defer cancel()

		user, pass, fallback := cfg.AdminCredentials()
		if fallback {
			log.Warn().Msg("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
		}
		if gin.Mode() == gin.DebugMode {
			log.Debug().Str("token", token).Msg("admin token (dev only)")
		}

		opts.Store = store
		opts.Tracker = tracker
		opts.Hasher = hasher
		opts.AdminUsername = user
		opts.AdminPassword = pass
		opts.AdminToken = token
		log.Info().Msg("privacy: visitor tracking enabled with hashed IP addresses; admin at /admin/login")
	}

	srv, err := server.New(site, opts)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("portfolio listening")
	if err := srv.Serve(ctx, addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
