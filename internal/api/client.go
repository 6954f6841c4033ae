// Package api is the sole component performing network I/O toward the
// CareConnect backend. It attaches stored credentials to outbound requests
// and folds every failure into the three-kind Error taxonomy.
package api

import "context"

// TokenSource supplies the current access token for bearer injection.
// An empty string means logged out and no header is attached.
type TokenSource interface {
	Access(ctx context.Context) string
}

// Gateway is the typed contract the session layer consumes. Every method
// returns either the decoded response or an *Error.
type Gateway interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*VerifyEmailResponse, error)
	CurrentUser(ctx context.Context) (*MeResponse, error)

	PublicStats(ctx context.Context) (*StatsResponse, error)
	Qualifications(ctx context.Context) (*QualificationsResponse, error)
}
