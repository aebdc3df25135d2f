package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"crinkbot/internal/app"
	"crinkbot/internal/store"
)

// seal: move credentials out of a plaintext .env into an encrypted file.
func sealCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt the credentials from a .env file into a secrets file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			vals, err := app.ReadEnvFile(envFile)
			if err != nil {
				return err
			}
			secrets := map[string]string{}
			for _, k := range app.SecretKeys {
				if v, ok := vals[k]; ok {
					secrets[k] = v
				}
			}
			if len(secrets) == 0 {
				return fmt.Errorf("no credentials found in %s", envFile)
			}
			if err := store.SealSecrets(out, passphrase, secrets); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sealed %d keys into %s\n", len(secrets), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "secrets.sealed", "sealed secrets file to write")
	return cmd
}
