package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hbridge/careconnect-cli/internal/api"
	"github.com/hbridge/careconnect-cli/internal/config"
	"github.com/hbridge/careconnect-cli/internal/logging"
	"github.com/hbridge/careconnect-cli/internal/session"
	"github.com/hbridge/careconnect-cli/internal/store"
)

// newTestApp wires a real App against a httptest backend and a throwaway
// sqlite file, with input coming from the given script.
func newTestApp(t *testing.T, baseURL, input string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.New(io.Discard, "error")
	cfg := &config.Config{
		APIBaseURL:     baseURL,
		RequestTimeout: 2 * time.Second,
		DatabasePath:   filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := store.Open(context.Background(), cfg.DatabasePath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens := store.NewTokenStore(db, log)
	gateway := api.NewHTTPGateway(cfg.APIBaseURL, cfg.RequestTimeout, tokens, log)

	var out bytes.Buffer
	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		gateway:  gateway,
		sessions: session.New(gateway, tokens, log),
		pending:  store.NewPendingProfileStore(db, log),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, &out
}

func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	old := readPassword
	i := 0
	readPassword = func(int) ([]byte, error) {
		pw := passwords[i%len(passwords)]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() { readPassword = old })
}

func TestApp_RegisterWorker_ParksProfileAndStartsNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "nurse@example.co.uk", req.Email)
		require.Equal(t, "worker", req.UserType)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{
			UserID:  uuid.New(),
			Email:   req.Email,
			Message: "Registration successful. Please check your email.",
		})
	}))
	defer srv.Close()

	stubPasswords(t, "Str0ngPass!")
	input := strings.Join([]string{
		"nurse@example.co.uk", // email
		"Ada",                 // first name
		"Lovelace",            // last name
		"07123 456789",        // phone
		"1990-05-01",          // date of birth
		"SW1A 1AA",            // postcode
		"yes",                 // review: submit
	}, "\n") + "\n"

	app, out := newTestApp(t, srv.URL, input)
	require.NoError(t, app.RegisterWorker(context.Background()))

	require.Contains(t, out.String(), "Account created")
	require.False(t, app.sessions.IsAuthenticated())

	profile, ok := app.pending.Take(context.Background(), "worker")
	require.True(t, ok)
	require.Equal(t, "Ada", profile["first_name"])
	require.Equal(t, "SW1A 1AA", profile["postcode"])
}

func TestApp_RegisterWorker_BackFromReviewKeepsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{Message: "ok"})
	}))
	defer srv.Close()

	stubPasswords(t, "Str0ngPass!")
	input := strings.Join([]string{
		"nurse@example.co.uk",
		"Ada",
		"Lovelace",
		"07123456789",
		"1990-05-01",
		"SW1A1AA",
		"back", // review: go back to step 2
		"",     // keep phone
		"",     // keep date of birth
		"",     // keep postcode
		"yes",  // review again: submit
	}, "\n") + "\n"

	app, out := newTestApp(t, srv.URL, input)
	require.NoError(t, app.RegisterWorker(context.Background()))
	require.Contains(t, out.String(), "Account created")

	profile, ok := app.pending.Take(context.Background(), "worker")
	require.True(t, ok)
	require.Equal(t, "07123456789", profile["phone"])
}

func TestApp_RegisterCareHome_SinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		require.Equal(t, "care_home", req.UserType)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{Message: "ok"})
	}))
	defer srv.Close()

	stubPasswords(t, "Str0ngPass!")
	input := strings.Join([]string{
		"Sunrise Care Ltd",      // business name
		"1-101234567",           // cqc number
		"admin@sunrise.example", // email
		"020 7946 0000",         // phone
		"N1 9GU",                // postcode
	}, "\n") + "\n"

	app, out := newTestApp(t, srv.URL, input)
	require.NoError(t, app.RegisterCareHome(context.Background()))
	require.Contains(t, out.String(), "Account created")

	profile, ok := app.pending.Take(context.Background(), "care_home")
	require.True(t, ok)
	require.Equal(t, "Sunrise Care Ltd", profile["business_name"])
	require.Equal(t, "1-101234567", profile["cqc_number"])
}

func TestApp_RegisterWorker_ServerFailureAllowsRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{Message: "ok"})
	}))
	defer srv.Close()

	stubPasswords(t, "Str0ngPass!")
	input := strings.Join([]string{
		"nurse@example.co.uk",
		"Ada",
		"Lovelace",
		"07123456789",
		"1990-05-01",
		"SW1A1AA",
		"yes", // submit: fails
		"yes", // retry
		"yes", // review again: submit succeeds
	}, "\n") + "\n"

	app, out := newTestApp(t, srv.URL, input)
	require.NoError(t, app.RegisterWorker(context.Background()))

	require.Contains(t, out.String(), "Registration failed: Email already registered")
	require.Contains(t, out.String(), "Account created")
	require.Equal(t, 2, attempts)
}

func TestApp_LoginThenWhoAmI(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(api.LoginResponse{
				AccessToken:   "acc-1",
				RefreshToken:  "ref-1",
				UserID:        userID,
				UserType:      "worker",
				EmailVerified: true,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	stubPasswords(t, "Str0ngPass!")
	app, out := newTestApp(t, srv.URL, "nurse@example.co.uk\n")

	require.NoError(t, app.Login(context.Background()))
	require.True(t, app.sessions.IsAuthenticated())
	require.Contains(t, out.String(), "Logged in as nurse@example.co.uk")

	require.NoError(t, app.WhoAmI(context.Background()))
	require.Contains(t, out.String(), "Role:     worker")

	// The pair must have been persisted for the next start.
	pair := store.NewTokenStore(app.db, app.log).Read(context.Background())
	require.Equal(t, "acc-1", pair.AccessToken)
}

func TestApp_Login_InvalidCredentialsSurfacesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	defer srv.Close()

	stubPasswords(t, "wrong")
	app, out := newTestApp(t, srv.URL, "nurse@example.co.uk\n")

	require.Error(t, app.Login(context.Background()))
	require.False(t, app.sessions.IsAuthenticated())
	require.Contains(t, out.String(), "Incorrect email or password")
}

func TestApp_Login_LocalValidationShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for invalid input")
	}))
	defer srv.Close()

	stubPasswords(t, "pw")
	app, out := newTestApp(t, srv.URL, "not-an-email\n")

	require.NoError(t, app.Login(context.Background()))
	require.Contains(t, out.String(), "Email is invalid")
}

func TestApp_Stats_FallsBackWhenUnreachable(t *testing.T) {
	app, out := newTestApp(t, "http://127.0.0.1:1", "")
	require.NoError(t, app.Stats(context.Background()))
	require.Contains(t, out.String(), "0+")
}

func TestApp_Verify_FlipsSessionAndRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(api.LoginResponse{
				AccessToken: "acc", RefreshToken: "ref",
				UserID: uuid.New(), UserType: "worker", EmailVerified: false,
			})
		case "/auth/verify-email":
			var req api.VerifyEmailRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			require.Equal(t, "tok-123", req.Token)
			_ = json.NewEncoder(w).Encode(api.VerifyEmailResponse{
				Success: true, Message: "Email verified", RedirectTo: "/complete-profile",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	stubPasswords(t, "Str0ngPass!")
	app, out := newTestApp(t, srv.URL, "nurse@example.co.uk\ntok-123\n")

	require.NoError(t, app.Login(context.Background()))
	require.Contains(t, out.String(), "/verify-email")

	require.NoError(t, app.Verify(context.Background()))
	require.Contains(t, out.String(), "Email verified")
	require.Contains(t, out.String(), "Continue at: /complete-profile")

	user := app.sessions.CurrentUser()
	require.True(t, user.EmailVerified)
}
