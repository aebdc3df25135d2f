package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"crinkbot/internal/app"
)

var (
	envFile     string
	secretsFile string
	passphrase  string
	verbose     bool

	logger *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "crinkbot",
		Short:        "Crink's Discord bot",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with credentials")
	root.PersistentFlags().StringVar(&secretsFile, "secrets", "", "sealed secrets file (see seal)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for the secrets file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(runCmd(), consoleCmd(), dropChanceCmd(), iconCmd(), sealCmd())
	return root.Execute()
}

// loadConfig reads settings using the root flags.
func loadConfig() (app.Config, error) {
	if secretsFile != "" && passphrase == "" {
		return app.Config{}, fmt.Errorf("passphrase required for --secrets (-p)")
	}
	return app.Load(app.LoadOptions{
		EnvFile:     envFile,
		SecretsFile: secretsFile,
		Passphrase:  passphrase,
	})
}
