package ui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

// EntryInput is the data collected by the entry form.
type EntryInput struct {
	Time      string
	Comment   string
	TicketRef string
}

// fieldValidator adapts a form message function to huh's error validator.
func fieldValidator(check func(string) string) func(string) error {
	return func(s string) error {
		if msg := check(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

// NewEntryForm builds the interactive entry form. Values are read from and
// written back to in, so an edit starts pre-filled.
func NewEntryForm(title string, in *EntryInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time (e.g., 1h 45m)").
				Placeholder("1h 45m").
				Value(&in.Time).
				Validate(fieldValidator(tracker.ValidateTime)),
			huh.NewInput().
				Title("Ticket Reference").
				Description(`Ticket number, title, or reference (e.g. "#123", "PROJ-123", "Bug Fix: Login Issue")`).
				Placeholder("#123, PROJ-123 or Bug Fix: Login Issue").
				Value(&in.TicketRef),
			huh.NewInput().
				Title("Comment").
				Placeholder("What did you work on?").
				Value(&in.Comment).
				Validate(fieldValidator(tracker.ValidateComment)),
		).Title(title),
	).WithShowHelp(false)
}

// ConfirmDelete asks before an entry is removed. An aborted prompt counts
// as "no".
func ConfirmDelete() (bool, error) {
	confirmed := false
	err := huh.NewConfirm().
		Title("Are you sure you want to delete this entry?").
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return confirmed, err
}
