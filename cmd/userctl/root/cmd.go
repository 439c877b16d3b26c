// Package rootcmd wires the root cobra.Command for the userctl CLI binary.
package rootcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	createcmd "userdir/cmd/userctl/create"
	deletecmd "userdir/cmd/userctl/delete"
	getcmd "userdir/cmd/userctl/get"
	listcmd "userdir/cmd/userctl/list"
	"userdir/cmd/userctl/shared"
	updatecmd "userdir/cmd/userctl/update"
	"userdir/internal/userstate"
)

// New creates and returns the root cobra.Command for the userctl CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}
	v := viper.New()
	v.SetEnvPrefix("USERCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "userctl",
		Short:         "Browse and edit the user directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx.ServerURL = v.GetString("server")
			ctx.Output = v.GetString("output")
			ctx.ItemsPerPage = v.GetInt("per-page")
			if ctx.ItemsPerPage < 1 {
				return fmt.Errorf("--per-page must be at least 1, got %d", ctx.ItemsPerPage)
			}
			return ctx.ValidateOutput()
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	flags := root.PersistentFlags()
	flags.String("server", "http://localhost:3000", "Base URL of the user directory server (env USERCTL_SERVER)")
	flags.StringP("output", "o", shared.OutputTable, "Output format: table, json or yaml")
	flags.Int("per-page", userstate.DefaultItemsPerPage, "Users per page")
	_ = v.BindPFlag("server", flags.Lookup("server"))
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("per-page", flags.Lookup("per-page"))

	root.AddCommand(
		listcmd.New(ctx).Cmd(),
		getcmd.New(ctx).Cmd(),
		createcmd.New(ctx).Cmd(),
		updatecmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
	)

	return root
}
