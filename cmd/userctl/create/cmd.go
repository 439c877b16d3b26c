// Package createcmd implements the `userctl create` command.
package createcmd

import (
	"github.com/spf13/cobra"

	"userdir/cmd/userctl/shared"
	"userdir/internal/models"
)

// Command implements `userctl create`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	firstName string
	lastName  string
	height    float64
	weight    float64
	gender    string
	location  string
	photo     string
}

// New creates the create command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "create",
		Short: "Add a user to the directory",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	f := c.cmd.Flags()
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

func (c *Command) request() models.CreateUserRequest {
	req := models.CreateUserRequest{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Gender:    c.gender,
		Location:  c.location,
	}
	flags := c.cmd.Flags()
	if flags.Changed("height") {
		h := c.height
		req.Height = &h
	}
	if flags.Changed("weight") {
		w := c.weight
		req.Weight = &w
	}
	if flags.Changed("photo") {
		p := c.photo
		req.Photo = &p
	}
	return req
}

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	store := c.ctx.NewStore()
	if err := c.ctx.LoadPage(cmd.OutOrStdout(), store, 1); err != nil {
		return err
	}
	_, _ = store.CreateUser(c.request())
	return c.ctx.RenderState(cmd.OutOrStdout(), store.State())
}
