package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crinkbot/internal/app"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and answer commands until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := app.NewWire(ctx, cfg, logger)
			if err != nil {
				return err
			}
			logger.Info("starting crinkbot",
				zap.Int("workers", cfg.Workers),
				zap.Duration("http_timeout", cfg.HTTPTimeout))
			return w.Dispatcher.Run(ctx)
		},
	}
}
