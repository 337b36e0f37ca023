package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tupyy/rrpool/internal/config"
	"github.com/tupyy/rrpool/internal/frontend"
	"github.com/tupyy/rrpool/internal/handlers"
	"github.com/tupyy/rrpool/internal/logging"
	"github.com/tupyy/rrpool/internal/metrics"
	"github.com/tupyy/rrpool/internal/server"
	"github.com/tupyy/rrpool/pkg/threadpool"
)

const shutdownTimeout = 10 * time.Second

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the front-end and the admin server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}

			undo, err := logging.Setup(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer undo()

			zap.S().Named("run").Infow("configuration loaded", "config", cfg.DebugMap())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg *config.Configuration) error {
	workers := cfg.Pool.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	pool, err := threadpool.New[error](workers)
	if err != nil {
		return err
	}
	defer pool.Close()

	front, err := frontend.NewServer(cfg.Server, frontend.WithSubmitter(pool))
	if err != nil {
		return err
	}

	// everything that can fail is built before the first goroutine starts
	var admin *server.Server
	if cfg.Admin.Enabled {
		registry, err := metrics.NewRegistry(pool)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}

		admin, err = server.NewServer(cfg.Admin, registry, func(router *gin.RouterGroup) {
			handlers.New(pool).Register(router)
		})
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return front.ListenAndServe(gctx)
	})

	if admin != nil {
		g.Go(func() error {
			return admin.Start(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return admin.Stop(shutdownCtx)
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		zap.S().Named("run").Errorw("stopped with error", "error", err)
		return err
	}

	zap.S().Named("run").Info("stopped")
	return nil
}
