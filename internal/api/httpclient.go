package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hbridge/careconnect-cli/internal/logging"
)

// DefaultTimeout is the fixed ceiling on any single request. A call still
// in flight after this is abandoned and reported as unreachable; whatever
// the transport does afterwards is ignored.
const DefaultTimeout = 10 * time.Second

// HTTPGateway talks JSON over HTTP to the backend. All requests share one
// http.Client whose Timeout is the only cancellation semantic; there is no
// retry and no token refresh (a 401 is surfaced as-is).
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPGateway(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPGateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// errorBody is the error envelope the backend sends on non-2xx responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs one request: encodes body (when non-nil), attaches the bearer
// token (when present), classifies failures, and decodes a 2xx response
// into out.
func (g *HTTPGateway) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindServer, Detail: "request encoding failed"}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindUnreachable}
	}
	req.Header.Set("Content-Type", "application/json")

	if token := g.tokens.Access(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// Timeouts, refused connections, and DNS failures all land here.
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return &Error{Kind: KindUnreachable}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Warn(ctx, "response read failed", "method", method, "path", path, "error", err)
		return &Error{Kind: KindUnreachable}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// No automatic refresh; the caller decides what a 401 means.
		g.log.Warn(ctx, "authentication required", "method", method, "path", path)
		return &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Detail: extractDetail(raw)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Detail: extractDetail(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			g.log.Error(ctx, "response decode failed", "method", method, "path", path, "error", err)
			return &Error{Kind: KindServer, Status: resp.StatusCode, Detail: "invalid response body"}
		}
	}
	return nil
}

// extractDetail pulls the backend's `detail` string out of an error body.
// Non-string details (e.g. validation lists) are dropped rather than shown
// to the user.
func extractDetail(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return ""
	}
	return eb.Detail
}

func (g *HTTPGateway) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := g.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := g.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*VerifyEmailResponse, error) {
	var resp VerifyEmailResponse
	if err := g.do(ctx, http.MethodPost, "/auth/verify-email", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) CurrentUser(ctx context.Context) (*MeResponse, error) {
	var resp MeResponse
	if err := g.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) PublicStats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := g.do(ctx, http.MethodGet, "/public/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) Qualifications(ctx context.Context) (*QualificationsResponse, error) {
	var resp QualificationsResponse
	if err := g.do(ctx, http.MethodGet, "/public/qualifications", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
