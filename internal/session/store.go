// Package session owns the client's belief about who is logged in: the
// current user, the auth lifecycle (restore, register, login, logout,
// verify), and the translation of gateway failures into user-facing
// messages. The Store is constructor-injected everywhere it is needed;
// there is no package-level instance.
package session

import (
	"context"
	"sync"

	"github.com/hbridge/careconnect-cli/internal/api"
	"github.com/hbridge/careconnect-cli/internal/logging"
	"github.com/hbridge/careconnect-cli/internal/store"
)

// TokenStore is the slice of the local store the session needs. All
// methods are fail-silent; a broken store reads as logged out.
type TokenStore interface {
	Save(ctx context.Context, pair store.TokenPair)
	Read(ctx context.Context) store.TokenPair
	Clear(ctx context.Context)
}

// Store holds the session state. current is non-nil only while the token
// store holds a matching access token; the brief window between a failed
// restore and the storage clear resolves before loading flips to false.
type Store struct {
	gateway api.Gateway
	tokens  TokenStore
	log     logging.Logger

	mu        sync.Mutex
	current   *User
	loading   bool
	lastError string
	restoreCh chan struct{}
}

// New builds a Store. loading starts true and settles to false when the
// first Restore completes.
func New(gateway api.Gateway, tokens TokenStore, log logging.Logger) *Store {
	return &Store{
		gateway: gateway,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// Restore rebuilds the session from persisted tokens: if an access token
// is stored, it is confirmed with /auth/me; any failure clears storage and
// leaves the session logged out without surfacing an error. Concurrent
// calls collapse into the one in-flight restoration; later callers block
// until it finishes. loading is set to false exactly once per restoration.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	if ch := s.restoreCh; ch != nil {
		s.mu.Unlock()
		<-ch
		return
	}
	ch := make(chan struct{})
	s.restoreCh = ch
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.restoreCh = nil
		s.mu.Unlock()
		close(ch)
	}()

	pair := s.tokens.Read(ctx)
	if pair.Empty() {
		return
	}

	me, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		// Stale or rejected token: silent logout, no error banner.
		s.log.Warn(ctx, "session restore failed", "error", err)
		s.tokens.Clear(ctx)
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return
	}

	user := userFromMe(me)
	s.mu.Lock()
	s.current = user
	s.lastError = ""
	s.mu.Unlock()
}

// Register creates an account. The backend returns only an
// acknowledgement, never tokens: the session stays logged out until the
// email is verified and the user logs in. userType is the wire value,
// "worker" or "care_home".
func (s *Store) Register(ctx context.Context, email, password, userType string) (string, error) {
	resp, err := s.gateway.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		UserType: userType,
	})
	if err != nil {
		msg := messageFor(err, "Registration failed")
		s.setLastError(msg)
		return "", &Error{Message: msg, Err: err}
	}

	s.clearLastError()
	if resp.Message == "" {
		return "Registration successful", nil
	}
	return resp.Message, nil
}

// Login authenticates, persists the returned token pair, and installs the
// current user mapped from the wire response. On failure the session state
// is untouched and the returned error carries a human-readable message.
func (s *Store) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := s.gateway.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		msg := messageFor(err, "Login failed")
		s.setLastError(msg)
		return nil, &Error{Message: msg, Err: err}
	}

	s.tokens.Save(ctx, store.TokenPair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	})

	pct := 0
	if resp.ProfileComplete != nil && *resp.ProfileComplete {
		pct = 100
	}
	user := &User{
		ID:                          resp.UserID,
		Email:                       email,
		Role:                        ParseRole(resp.UserType),
		EmailVerified:               resp.EmailVerified,
		ProfileCompletionPercentage: pct,
	}

	s.mu.Lock()
	s.current = user
	s.lastError = ""
	s.mu.Unlock()

	copied := *user
	return &copied, nil
}

// Logout drops everything local. No network call is involved, so it
// cannot fail.
func (s *Store) Logout(ctx context.Context) {
	s.tokens.Clear(ctx)
	s.mu.Lock()
	s.current = nil
	s.lastError = ""
	s.mu.Unlock()
}

// VerifyResult is the outcome of an email verification.
type VerifyResult struct {
	Message string
	// RedirectTo is the backend's suggested next screen, when present.
	RedirectTo string
}

// VerifyEmail redeems a verification token. On success the current user's
// verified flag is flipped in place (when a session exists).
func (s *Store) VerifyEmail(ctx context.Context, token string) (*VerifyResult, error) {
	resp, err := s.gateway.VerifyEmail(ctx, api.VerifyEmailRequest{Token: token})
	if err != nil {
		msg := messageFor(err, "Verification failed")
		s.setLastError(msg)
		return nil, &Error{Message: msg, Err: err}
	}

	s.mu.Lock()
	if s.current != nil {
		s.current.EmailVerified = true
	}
	s.lastError = ""
	s.mu.Unlock()

	return &VerifyResult{Message: resp.Message, RedirectTo: resp.RedirectTo}, nil
}

// CurrentUser returns a copy of the current user, or nil when logged out.
// The Store keeps ownership of the original.
func (s *Store) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// IsAuthenticated reports whether a user is installed.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Loading reports whether the initial restoration is still in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failed operation, or ""
// after a success.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Store) setLastError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

func (s *Store) clearLastError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
}

// userFromMe maps the /auth/me DTO onto the canonical User, reconciling
// the two role field names and the two profile-completion shapes.
func userFromMe(me *api.MeResponse) *User {
	wireRole := me.Role
	if wireRole == "" {
		wireRole = me.UserType
	}

	pct := 0
	switch {
	case me.ProfileCompletionPercentage != nil:
		pct = *me.ProfileCompletionPercentage
	case me.ProfileComplete != nil && *me.ProfileComplete:
		pct = 100
	}

	return &User{
		ID:                          me.ID,
		Email:                       me.Email,
		Role:                        ParseRole(wireRole),
		EmailVerified:               me.EmailVerified,
		ProfileCompletionPercentage: pct,
	}
}
