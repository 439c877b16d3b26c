package userstate

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// EmptyMessage is shown instead of a table when the page holds no users.
const EmptyMessage = "No users available"

// Render writes a plain-text view of s: a loading line while a request is in
// flight, the last error, and either the user table with a page footer or
// EmptyMessage.
func Render(w io.Writer, s State) error {
	if s.Status == StatusLoading {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}
	if s.Error != "" {
		if _, err := fmt.Fprintf(w, "Error: %s\n", s.Error); err != nil {
			return err
		}
	}
	if len(s.Users) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tHEIGHT\tWEIGHT\tGENDER\tLOCATION\tPHOTO")
	for _, u := range s.Users {
		photo := "-"
		if u.Photo != nil && *u.Photo != "" {
			photo = *u.Photo
		}
		fmt.Fprintf(tw, "%d\t%s %s\t%s cm\t%s kg\t%s\t%s\t%s\n",
			u.ID, u.FirstName, u.LastName, formatNumber(u.Height), formatNumber(u.Weight),
			u.Gender, u.Location, photo)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d (%d users)\n",
		s.Pagination.CurrentPage, s.Pagination.TotalPages, s.Pagination.TotalItems)
	return err
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
