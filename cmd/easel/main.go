package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/easel/internal/app"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(app.Run, isTerminal)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "easel: %v\n", err)
		return 1
	}
	return 0
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(runApp runFunc, tty func() bool) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "easel",
		Short:         "Browse Art Institute of Chicago artworks and pick a selection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.StartPage < 1 {
				return fmt.Errorf("page must be >= 1, got %d", opts.StartPage)
			}
			if !tty() {
				return errNotTerminal
			}
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/easel/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/easel/prefs.toml)")
	flags.IntVar(&opts.StartPage, "page", 1, "page to open first")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	return cmd
}
