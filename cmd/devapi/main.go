package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var (
		addr     string
		seedPath string
	)
	cmd := &cobra.Command{
		Use:          "devapi",
		Short:        "In-memory Reddit and collection log stand-in",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			s, err := loadSeed(seedPath)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           newHandler(newMemoryStore(s), log),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info("devapi listening", zap.String("addr", addr),
				zap.Int("subreddits", len(s.Subreddits)), zap.Int("players", len(s.Players)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML seed file (default: built-in)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
