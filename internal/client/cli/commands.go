package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/socialcli/internal/buildinfo"
	"github.com/dmitrijs2005/socialcli/internal/client/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configFlags maps the cobra flag names onto the flags config.Load parses.
var configFlags = map[string]string{
	"config":    "-config",
	"server":    "-a",
	"timeout":   "-t",
	"store":     "-s",
	"data-dir":  "-d",
	"log-level": "-l",
}

// NewRootCommand builds the "social" command. Without a subcommand it
// starts the interactive REPL.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "social",
		Short:         "Command-line client for the social backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.Run(ctx)
				return nil
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to a JSON config file")
	pf.StringP("server", "a", "", "backend API base URL")
	pf.IntP("timeout", "t", 0, "request timeout in seconds")
	pf.StringP("store", "s", "", "credential store: memory, sqlite, redis")
	pf.StringP("data-dir", "d", "", "data directory of the sqlite store")
	pf.StringP("log-level", "l", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newVersionCommand(),
		newWhoAmICommand(),
		newFeedCommand(),
		newLogoutCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func newWhoAmICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.WhoAmI(ctx) })
		},
	}
}

func newFeedCommand() *cobra.Command {
	var withComments bool
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.showFeed(ctx, withComments) })
		},
	}
	cmd.Flags().BoolVarP(&withComments, "with-comments", "w", false, "load comments of every post")
	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.Logout(ctx) })
		},
	}
}

// configArgs renders the flags set on cmd in the form config.Load expects.
func configArgs(cmd *cobra.Command) []string {
	var args []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if name, ok := configFlags[f.Name]; ok {
			args = append(args, name, f.Value.String())
		}
	})
	return args
}

// newApp is a test seam for NewApp.
var newApp = NewApp

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configArgs(cmd))
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		if msg := describeError(err); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	return nil
}
