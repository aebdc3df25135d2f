package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"crinkbot/internal/domain"
	"crinkbot/internal/store"
)

// icon [id]: list the dataset or extract one icon.
func iconCmd() *cobra.Command {
	var (
		icons string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "icon [item-id]",
		Short: "Inspect or extract icons from the item icon dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.LoadIcons(icons)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d icons in %s\n", s.Len(), icons)
				for _, id := range s.IDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}

			id := domain.ItemID(args[0])
			img, err := s.Lookup(id)
			if err != nil {
				return err
			}
			path := filepath.Join(out, store.IconFileName(id, img))
			if err := os.WriteFile(path, img, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(img))
			return nil
		},
	}
	cmd.Flags().StringVar(&icons, "icons", "data/item-icons.json", "icon dataset")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "directory to extract into")
	return cmd
}
