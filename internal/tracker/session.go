package tracker

import (
	"context"
	"time"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/timecalc"
)

// Session is the state of one interactive session: the selected date, the
// entry form, the entry being edited and the history view. Its methods are
// the only way to change that state.
type Session struct {
	store *Store
	now   func() time.Time

	selectedDate string

	timeInput    string
	commentInput string
	ticketInput  string
	errors       FieldErrors

	editing *model.TimeEntry

	showHistory bool
	page        int
	pageSize    int
}

// NewSession starts a session on today's date.
func NewSession(store *Store, now func() time.Time, pageSize int) *Session {
	if now == nil {
		now = time.Now
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Session{
		store:        store,
		now:          now,
		selectedDate: timecalc.Today(now()),
		page:         1,
		pageSize:     pageSize,
	}
}

// SelectedDate returns the date new entries are logged against.
func (s *Session) SelectedDate() string { return s.selectedDate }

// SelectDate changes the selected date and closes the history view.
// It reports false and changes nothing if date is malformed or in the future.
func (s *Session) SelectDate(date string) bool {
	if _, err := timecalc.ParseDate(date); err != nil {
		return false
	}
	if !timecalc.NotAfterToday(date, s.now()) {
		return false
	}
	s.selectedDate = date
	s.showHistory = false
	return true
}

// SetTime updates the duration field and re-validates the form.
func (s *Session) SetTime(v string) {
	s.timeInput = v
	s.errors = ValidateForm(s.timeInput, s.commentInput)
}

// SetComment updates the comment field and re-validates the form.
func (s *Session) SetComment(v string) {
	s.commentInput = v
	s.errors = ValidateForm(s.timeInput, s.commentInput)
}

// SetTicketRef updates the optional ticket field.
func (s *Session) SetTicketRef(v string) {
	s.ticketInput = v
}

// Errors returns the current field messages.
func (s *Session) Errors() FieldErrors { return s.errors }

// Form returns the current field values.
func (s *Session) Form() (timeExpr, comment, ticketRef string) {
	return s.timeInput, s.commentInput, s.ticketInput
}

// Editing returns the entry being edited, if any.
func (s *Session) Editing() (model.TimeEntry, bool) {
	if s.editing == nil {
		return model.TimeEntry{}, false
	}
	return *s.editing, true
}

// BeginEdit loads an entry into the form. Submit then updates it.
func (s *Session) BeginEdit(e model.TimeEntry) {
	s.editing = &e
	s.timeInput = e.Time
	s.commentInput = e.Comment
	s.ticketInput = e.TicketRef
}

// Cancel leaves edit mode and clears the form.
func (s *Session) Cancel() {
	s.editing = nil
	s.clearForm()
}

func (s *Session) clearForm() {
	s.timeInput = ""
	s.commentInput = ""
	s.ticketInput = ""
	s.errors = FieldErrors{}
}

// Submit validates the form and then updates the edited entry or creates a
// new one on the selected date. When validation fails nothing is written and
// the returned FieldErrors explain why. On success the form is cleared.
func (s *Session) Submit(ctx context.Context) (FieldErrors, error) {
	s.errors = ValidateForm(s.timeInput, s.commentInput)
	if !s.errors.OK() {
		return s.errors, nil
	}

	var err error
	if s.editing != nil {
		_, err = s.store.Update(ctx, s.editing.Timestamp, s.timeInput, s.commentInput, s.ticketInput)
		s.editing = nil
	} else {
		_, err = s.store.Create(ctx, s.timeInput, s.commentInput, s.ticketInput, s.selectedDate)
	}
	s.clearForm()
	return FieldErrors{}, err
}

// Delete asks confirm and, if it agrees, removes the entry. A declined
// confirmation is a no-op. It reports whether an entry was removed.
func (s *Session) Delete(ctx context.Context, timestamp int64, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	return s.store.Delete(ctx, timestamp)
}

// Entries returns the entries on the selected date.
func (s *Session) Entries() []model.TimeEntry {
	return s.store.ByDate(s.selectedDate)
}

// TotalHours is the total for the selected date.
func (s *Session) TotalHours() float64 {
	return s.store.TotalHours(s.selectedDate)
}

// Title is the heading for the selected date's entry list.
func (s *Session) Title() string {
	if timecalc.IsToday(s.selectedDate, s.now()) {
		return "Today's Entries"
	}
	return "Entries for " + timecalc.LongDate(s.selectedDate)
}

// ShowHistory reports whether the history view is open.
func (s *Session) ShowHistory() bool { return s.showHistory }

// ToggleHistory opens or closes the history view and resets to page 1.
func (s *Session) ToggleHistory() {
	s.showHistory = !s.showHistory
	s.page = 1
}

// Page returns the current 1-based history page.
func (s *Session) Page() int { return s.page }

// PageSize returns the number of dates per history page.
func (s *Session) PageSize() int { return s.pageSize }

// SetPage moves to page. Out-of-range pages are refused, matching the
// disabled navigation controls.
func (s *Session) SetPage(page int) bool {
	if page < 1 || page > s.TotalPages() {
		return false
	}
	s.page = page
	return true
}

// NextPage advances one page if possible.
func (s *Session) NextPage() bool { return s.SetPage(s.page + 1) }

// PrevPage goes back one page if possible.
func (s *Session) PrevPage() bool { return s.SetPage(s.page - 1) }

// TotalPages is the history page count.
func (s *Session) TotalPages() int {
	return TotalPages(len(s.store.DistinctDates()), s.pageSize)
}

// HistoryPage returns the dates on the current history page.
func (s *Session) HistoryPage() []string {
	return Paginate(s.store.DistinctDates(), s.pageSize, s.page)
}
