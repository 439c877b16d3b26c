// Package deletecmd implements the `userctl delete` command.
package deletecmd

import (
	"github.com/spf13/cobra"

	"userdir/cmd/userctl/shared"
)

// Command implements `userctl delete`.
type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	page int
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user and show the page it was on",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	c.cmd.Flags().IntVarP(&c.page, "page", "p", 1, "Page to show after deleting")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	id, err := shared.ParseID(args[0])
	if err != nil {
		return err
	}
	store := c.ctx.NewStore()
	if err := c.ctx.LoadPage(cmd.OutOrStdout(), store, c.page); err != nil {
		return err
	}
	_ = store.DeleteUser(id)
	return c.ctx.RenderState(cmd.OutOrStdout(), store.State())
}
