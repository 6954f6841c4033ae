package api

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching across layers.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server error")
	ErrUnreachable  = errors.New("server unreachable")
)

// Kind classifies a gateway failure.
type Kind int

const (
	// KindUnauthorized: the backend rejected the credentials (401).
	KindUnauthorized Kind = iota + 1
	// KindServer: any other non-2xx response.
	KindServer
	// KindUnreachable: the request never produced a response (timeout,
	// DNS failure, connection refused).
	KindUnreachable
)

// Error is the only error type the gateway returns. Status and Detail are
// populated for KindServer responses; Detail carries the backend's
// human-readable `detail` field when one was supplied.
type Error struct {
	Kind   Kind
	Status int
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return "unauthorized"
	case KindUnreachable:
		return "server unreachable"
	default:
		if e.Detail != "" {
			return fmt.Sprintf("server error (status %d): %s", e.Status, e.Detail)
		}
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
}

// Unwrap maps the error onto its sentinel so callers can use errors.Is
// without inspecting Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindUnreachable:
		return ErrUnreachable
	default:
		return ErrServer
	}
}
