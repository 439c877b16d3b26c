// Package getcmd implements the `userctl get` command.
package getcmd

import (
	"github.com/spf13/cobra"

	"userdir/cmd/userctl/shared"
)

// Command implements `userctl get`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the get command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	id, err := shared.ParseID(args[0])
	if err != nil {
		return err
	}
	user, err := c.ctx.Client().GetUser(id)
	if err != nil {
		return shared.Failure(err)
	}
	return c.ctx.RenderValue(cmd.OutOrStdout(), user)
}
