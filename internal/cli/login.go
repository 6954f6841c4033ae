package cli

import (
	"context"
	"fmt"

	"github.com/hbridge/careconnect-cli/internal/session"
	"github.com/hbridge/careconnect-cli/internal/validation"
)

// Login prompts for credentials, validates them locally and asks the
// session store to sign in. On success the next route is printed.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	// Login only checks shape; the strength rules belong to registration.
	if msg := validation.Field("email", email, nil); msg != "" {
		fmt.Fprintln(a.out, msg)
		return nil
	}
	if password == "" {
		fmt.Fprintln(a.out, "Password is required")
		return nil
	}

	user, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.Email, user.Role)
	a.printRoute()
	return nil
}

// Logout ends the session locally and reports the new route.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	a.printRoute()
	return nil
}

// WhoAmI prints the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "Role:     %s\n", user.Role)
	fmt.Fprintf(a.out, "Verified: %t\n", user.EmailVerified)
	if user.Role == session.RoleWorker {
		fmt.Fprintf(a.out, "Profile:  %d%% complete\n", user.ProfileCompletionPercentage)
	}
	a.printRoute()
	return nil
}
