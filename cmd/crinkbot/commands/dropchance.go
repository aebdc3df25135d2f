package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"crinkbot/internal/chart"
	"crinkbot/internal/probability"
)

// dropchance <trials> <odds>: render the chart the bot would upload.
func dropChanceCmd() *cobra.Command {
	var (
		out    string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "dropchance <trials> <odds>",
		Short: "Render a drop chance chart to a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trials, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("trials: %w", err)
			}
			odds, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("odds: %w", err)
			}
			req := probability.Request{Trials: trials, Odds: odds}
			p, err := probability.At(req)
			if err != nil {
				return err
			}

			r := chart.Renderer{Width: width, Height: height}
			art, err := r.RenderFile(out, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s chance after %d attempts, written to %s\n",
				chart.Title(req), chart.PercentLabel(p), trials, art.Path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dropchance.png", "output file")
	cmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", chart.DefaultHeight, "image height in pixels")
	return cmd
}
