// Package shared holds the state and helpers common to all userctl commands.
package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"userdir/internal/client"
	"userdir/internal/userstate"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var (
	// ErrReported means the failure was already rendered to the user.
	ErrReported = errors.New("request failed")
	// ErrPageOutOfRange is returned by OpenPage for a page outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	ServerURL    string
	Output       string
	ItemsPerPage int
}

// Client returns an API client for the configured server.
func (c *Context) Client() *client.Client {
	return client.New(c.ServerURL)
}

// NewStore returns a state container synchronized with the configured server.
func (c *Context) NewStore() *userstate.Store {
	return userstate.NewStore(c.Client(), c.ItemsPerPage)
}

// OpenPage fetches the first page and then moves the cursor to page through
// Store.GoToPage, so the current page always lies within the known page count.
// Request failures are recorded in the store state and returned as is.
func OpenPage(store *userstate.Store, page int) error {
	if err := store.FetchUsers(1); err != nil {
		return err
	}
	if page == 1 {
		return nil
	}
	ok, err := store.GoToPage(page)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d (have %d)", ErrPageOutOfRange, page, store.State().Pagination.TotalPages)
	}
	return nil
}

// LoadPage opens page on store and renders the state when a request failed.
// It returns nil only when the page is loaded.
func (c *Context) LoadPage(w io.Writer, store *userstate.Store, page int) error {
	err := OpenPage(store, page)
	if err == nil || errors.Is(err, ErrPageOutOfRange) {
		return err
	}
	return c.RenderState(w, store.State())
}

// RenderState prints s in the selected output format. When the state carries an
// error, ErrReported is returned after printing.
func (c *Context) RenderState(w io.Writer, s userstate.State) error {
	var err error
	switch c.Output {
	case OutputJSON:
		err = writeJSON(w, s)
	case OutputYAML:
		err = writeYAML(w, s)
	default:
		err = userstate.Render(w, s)
	}
	if err != nil {
		return err
	}
	if s.Status == userstate.StatusFailed {
		return ErrReported
	}
	return nil
}

// RenderValue prints a single value; tables fall back to YAML for non-list data.
func (c *Context) RenderValue(w io.Writer, v any) error {
	if c.Output == OutputJSON {
		return writeJSON(w, v)
	}
	return writeYAML(w, v)
}

// ValidateOutput checks the --output flag.
func (c *Context) ValidateOutput() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", c.Output)
	}
}

// Failure wraps a client error so it prints as the server's message.
func Failure(err error) error { return failure{err: err} }

type failure struct{ err error }

func (f failure) Error() string { return client.Message(f.err) }
func (f failure) Unwrap() error { return f.err }

// ParseID parses a user id argument.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
