package session

import (
	"errors"

	"github.com/hbridge/careconnect-cli/internal/api"
)

// Error carries the user-facing message for a failed auth operation while
// keeping the underlying gateway error reachable for errors.Is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// messageFor translates a gateway error into the string shown to the user.
// A backend-supplied detail is considered safe to surface; anything else
// collapses to the flow's generic fallback message.
func messageFor(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" && apiErr.Kind != api.KindUnreachable {
		return apiErr.Detail
	}
	return fallback
}
