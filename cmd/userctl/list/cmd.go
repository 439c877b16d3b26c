// Package listcmd implements the `userctl list` command.
package listcmd

import (
	"github.com/spf13/cobra"

	"userdir/cmd/userctl/shared"
)

// Command implements `userctl list`.
type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	page int
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "Show one page of users",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().IntVarP(&c.page, "page", "p", 1, "Page to show")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	store := c.ctx.NewStore()
	if err := c.ctx.LoadPage(cmd.OutOrStdout(), store, c.page); err != nil {
		return err
	}
	return c.ctx.RenderState(cmd.OutOrStdout(), store.State())
}
