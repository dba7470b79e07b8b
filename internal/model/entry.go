package model

// TimeEntry is one logged unit of work against a calendar date.
//
// The JSON keys match the layout the collection has always been stored
// in, so existing data loads without migration.
type TimeEntry struct {
	// Time is the duration expression exactly as the user typed it.
	Time      string `json:"time"`
	Comment   string `json:"comment"`
	TicketRef string `json:"ticketRef"`
	// Timestamp is the creation instant in Unix milliseconds and the
	// entry's identity.
	Timestamp int64 `json:"timestamp"`
	// Date is the YYYY-MM-DD day the entry is logged against.
	Date string `json:"date"`
}
