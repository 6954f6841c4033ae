package api

import "github.com/google/uuid"

// Wire DTOs for the CareConnect backend. These mirror the HTTP contract
// exactly and are mapped into canonical types at the session boundary;
// nothing above the session layer sees them.

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type RegisterResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	UserID       uuid.UUID `json:"user_id"`
	UserType     string    `json:"user_type"`
	EmailVerified bool     `json:"email_verified"`
	// Only populated for workers.
	ProfileComplete *bool `json:"profile_complete"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type VerifyEmailResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
}

// MeResponse is the canonical user object from /auth/me. The backend has
// used both `role` and `user_type` for the same field over time, so both
// are accepted here and reconciled by the session layer.
type MeResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	UserType      string    `json:"user_type"`
	EmailVerified bool      `json:"email_verified"`
	IsActive      bool      `json:"is_active"`

	ProfileComplete             *bool `json:"profile_complete"`
	ProfileCompletionPercentage *int  `json:"profile_completion_percentage"`
}

type StatsDisplay struct {
	Workers   string `json:"workers"`
	CareHomes string `json:"care_homes"`
	Completed string `json:"completed"`
	Verified  string `json:"verified"`
}

type StatsResponse struct {
	TotalWorkers      int          `json:"total_workers"`
	TotalCareHomes    int          `json:"total_care_homes"`
	CompletedProfiles int          `json:"completed_profiles"`
	VerifiedCareHomes int          `json:"verified_care_homes"`
	Display           StatsDisplay `json:"display"`
}

type Qualification struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsMandatory bool   `json:"is_mandatory"`
	WorkerCount int    `json:"worker_count"`
}

type QualificationsResponse struct {
	Qualifications []Qualification `json:"qualifications"`
}
