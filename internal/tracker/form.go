package tracker

import (
	"strings"

	"github.com/Tiliavir/hours-tracker/internal/timecalc"
)

// Field-level validation messages.
const (
	MsgTimeRequired    = "Time is required"
	MsgTimeInvalid     = "Invalid time format. Use format like: 1h 45m or 2d 1h 45m 35s"
	MsgCommentRequired = "Comment is required"
)

// FieldErrors holds advisory messages for the entry form. An empty string
// means the field is fine.
type FieldErrors struct {
	Time    string
	Comment string
}

// OK reports whether the form may be submitted.
func (f FieldErrors) OK() bool {
	return f.Time == "" && f.Comment == ""
}

// ValidateTime checks the duration field. The required check runs first
// and wins over the format check.
func ValidateTime(timeExpr string) string {
	switch {
	case strings.TrimSpace(timeExpr) == "":
		return MsgTimeRequired
	case !timecalc.ValidDuration(timeExpr):
		return MsgTimeInvalid
	default:
		return ""
	}
}

// ValidateComment checks the comment field.
func ValidateComment(comment string) string {
	if strings.TrimSpace(comment) == "" {
		return MsgCommentRequired
	}
	return ""
}

// ValidateForm validates both required fields.
func ValidateForm(timeExpr, comment string) FieldErrors {
	return FieldErrors{
		Time:    ValidateTime(timeExpr),
		Comment: ValidateComment(comment),
	}
}
