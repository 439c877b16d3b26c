// Package updatecmd implements the `userctl update` command.
package updatecmd

import (
	"errors"

	"github.com/spf13/cobra"

	"userdir/cmd/userctl/shared"
	"userdir/internal/models"
)

var errNoChanges = errors.New("nothing to update: set at least one field flag")

// Command implements `userctl update`.
type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	page int

	firstName string
	lastName  string
	height    float64
	weight    float64
	gender    string
	location  string
	photo     string
}

// New creates the update command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "update <user-id>",
		Short: "Change some fields of a user",
		Long:  "Change some fields of a user. Only the flags that are set are sent to the server.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	f := c.cmd.Flags()
	f.IntVarP(&c.page, "page", "p", 1, "Page to show after updating")
	f.StringVar(&c.firstName, "first-name", "", "First name")
	f.StringVar(&c.lastName, "last-name", "", "Last name")
	f.Float64Var(&c.height, "height", 0, "Height in cm")
	f.Float64Var(&c.weight, "weight", 0, "Weight in kg")
	f.StringVar(&c.gender, "gender", "", "Gender")
	f.StringVar(&c.location, "location", "", "Location")
	f.StringVar(&c.photo, "photo", "", "Photo URL")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// patch collects the flags that were set on the command line.
func (c *Command) patch() models.UserPatch {
	flags := c.cmd.Flags()
	var p models.UserPatch
	if flags.Changed("first-name") {
		p.FirstName = &c.firstName
	}
	if flags.Changed("last-name") {
		p.LastName = &c.lastName
	}
	if flags.Changed("height") {
		p.Height = &c.height
	}
	if flags.Changed("weight") {
		p.Weight = &c.weight
	}
	if flags.Changed("gender") {
		p.Gender = &c.gender
	}
	if flags.Changed("location") {
		p.Location = &c.location
	}
	if flags.Changed("photo") {
		p.Photo = &c.photo
	}
	return p
}

func (c *Command) run(cmd *cobra.Command, args []string) error {
	id, err := shared.ParseID(args[0])
	if err != nil {
		return err
	}
	patch := c.patch()
	if patch.IsEmpty() {
		return errNoChanges
	}
	store := c.ctx.NewStore()
	if err := c.ctx.LoadPage(cmd.OutOrStdout(), store, c.page); err != nil {
		return err
	}
	_, _ = store.UpdateUser(id, patch)
	return c.ctx.RenderState(cmd.OutOrStdout(), store.State())
}
