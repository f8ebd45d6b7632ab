package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/devprofiler/internal/buildinfo"
	"github.com/dmitrijs2005/devprofiler/internal/client/httpapi"
	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagName     = "name"
	flagType     = "type"
	flagStatus   = "status"
	flagAssigned = "assigned"
	flagDate     = "date"
	flagYes      = "yes"
)

func registerCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			return a.Register(ctx)
		}),
	}
}

func loginCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to an existing account",
		Args:  cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			return a.Login(ctx)
		}),
	}
}

func logoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			return a.Logout(ctx)
		}),
	}
}

func whoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			return a.WhoAmI(ctx)
		}),
	}
}

func listCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your devices",
		Args:    cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			return a.List(ctx)
		}),
	}
}

func addCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a device; prompts for the fields unless flags are given",
		Args:  cobra.NoArgs,
	}
	deviceFlags(cmd.Flags())
	cmd.RunE = withApp(e, func(ctx context.Context, a *App, _ []string) error {
		p, err := patchFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		return a.Add(ctx, p)
	})
	return cmd
}

func editCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a device; only the given flags change, no flags prompts for every field",
		Args:  cobra.ExactArgs(1),
	}
	deviceFlags(cmd.Flags())
	cmd.RunE = withApp(e, func(ctx context.Context, a *App, args []string) error {
		p, err := patchFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		return a.Edit(ctx, args[0], p)
	})
	return cmd
}

func deleteCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a device after confirmation",
		Args:    cobra.ExactArgs(1),
	}
	cmd.Flags().BoolP(flagYes, "y", false, "skip the confirmation prompt")
	cmd.RunE = withApp(e, func(ctx context.Context, a *App, args []string) error {
		yes, err := cmd.Flags().GetBool(flagYes)
		if err != nil {
			return err
		}
		return a.Delete(ctx, args[0], yes)
	})
	return cmd
}

func shellCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			a.Shell(ctx)
			return nil
		}),
	}
}

func serveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API until interrupted",
		Args:  cobra.NoArgs,
		RunE: withApp(e, func(ctx context.Context, a *App, _ []string) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpapi.NewServer(a.ctl, e.log)
			return srv.ListenAndServe(ctx, e.cfg.HTTPAddr, e.cfg.ShutdownTimeout)
		}),
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func deviceFlags(fs *pflag.FlagSet) {
	fs.String(flagName, "", "device name")
	fs.String(flagType, "", "device type: Laptop, Desktop, Phone, Tablet or Other")
	fs.String(flagStatus, "", "device status, e.g. Active or Retired")
	fs.String(flagAssigned, "", "person the device is assigned to")
	fs.String(flagDate, "", "last active date, YYYY-MM-DD")
}

// patchFromFlags collects the device flags that were set explicitly.
func patchFromFlags(fs *pflag.FlagSet) (models.DevicePatch, error) {
	var p models.DevicePatch

	get := func(name string) (*string, error) {
		if !fs.Changed(name) {
			return nil, nil
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	var err error
	if p.Name, err = get(flagName); err != nil {
		return p, err
	}
	if p.Status, err = get(flagStatus); err != nil {
		return p, err
	}
	if p.AssignedUser, err = get(flagAssigned); err != nil {
		return p, err
	}
	if p.LastActiveDate, err = get(flagDate); err != nil {
		return p, err
	}

	typ, err := get(flagType)
	if err != nil {
		return p, err
	}
	if typ != nil {
		t, err := models.ParseDeviceType(*typ)
		if err != nil {
			return p, fmt.Errorf("%w: %w", common.ErrorValidation, err)
		}
		p.Type = &t
	}
	return p, nil
}
