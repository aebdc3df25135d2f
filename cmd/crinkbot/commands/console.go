package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"crinkbot/internal/app"
	"crinkbot/internal/domain"
)

// console: drive the interpreter from stdin, e.g. against cmd/devapi.
func consoleCmd() *cobra.Command {
	var (
		out    string
		author string
	)
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Feed stdin lines to the command interpreter, no Discord needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			w, err := app.NewWire(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer w.Transport.Close()

			reply := &consoleReplier{w: cmd.OutOrStdout(), dir: out}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if ctx.Err() != nil {
					break
				}
				msg := domain.Message{
					ID:         uuid.NewString(),
					RequestID:  uuid.NewString(),
					ChannelID:  "console",
					AuthorID:   domain.UserID(author),
					AuthorName: author,
					Content:    sc.Text(),
				}
				w.Interpreter.Handle(ctx, msg, reply)
			}
			return sc.Err()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "directory for uploaded files")
	cmd.Flags().StringVar(&author, "as", "console", "author id for the messages")
	return cmd
}

// consoleReplier prints replies and saves attachments to dir.
type consoleReplier struct {
	mu  sync.Mutex
	w   io.Writer
	dir string
}

func (r *consoleReplier) SendText(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.w, "bot> %s\n", text)
	return err
}

func (r *consoleReplier) SendEmbed(_ context.Context, e domain.Embed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "bot> [%s] %s\n", e.Title, e.Description)
	for _, f := range e.Fields {
		fmt.Fprintf(r.w, "       %s: %s\n", f.Name, f.Value)
	}
	if e.ImageURL != "" {
		fmt.Fprintf(r.w, "       image: %s\n", e.ImageURL)
	}
	return nil
}

func (r *consoleReplier) SendFile(_ context.Context, name string, rd io.Reader) error {
	path := filepath.Join(r.dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, rd); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = fmt.Fprintf(r.w, "bot> [file] %s\n", path)
	return err
}

var _ domain.Replier = (*consoleReplier)(nil)
