package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/devprofiler/internal/client/config"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
	"github.com/spf13/cobra"
)

// env carries the process streams and whatever the root command built
// before a subcommand runs.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg *config.Config
	log logging.Logger
	app *App
}

// Execute runs the devprofiler command line against the process streams.
func Execute(ctx context.Context) error {
	e := &env{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	return e.run(ctx, os.Args[1:])
}

func (e *env) run(ctx context.Context, args []string) error {
	root := newRootCommand(e)
	root.SetArgs(args)
	root.SetIn(e.in)
	root.SetOut(e.out)
	root.SetErr(e.errOut)

	err := root.ExecuteContext(ctx)
	if e.app != nil {
		err = errors.Join(err, e.app.Close())
		e.app = nil
	}

	var re *ResultError
	if err != nil && !errors.As(err, &re) {
		NewNotifier(e.errOut).Error(err)
	}
	return err
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "devprofiler",
		Short:         "Keep track of the devices registered to your account",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.LogLevel, cfg.LogFormat, e.errOut)
			if err != nil {
				return err
			}

			e.cfg, e.log = cfg, log
			return nil
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		registerCmd(e),
		loginCmd(e),
		logoutCmd(e),
		whoamiCmd(e),
		listCmd(e),
		addCmd(e),
		editCmd(e),
		deleteCmd(e),
		shellCmd(e),
		serveCmd(e),
		versionCmd(),
	)
	return root
}

// open builds the App on first use so commands like version never touch
// the store.
func (e *env) open(ctx context.Context) (*App, error) {
	if e.app != nil {
		return e.app, nil
	}
	a, err := NewApp(ctx, e.cfg, e.log, e.in, e.out)
	if err != nil {
		return nil, err
	}
	e.app = a
	return a, nil
}

// withApp adapts an App method into a cobra RunE.
func withApp(e *env, fn func(context.Context, *App, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := e.open(cmd.Context())
		if err != nil {
			return err
		}
		return fn(cmd.Context(), a, args)
	}
}
