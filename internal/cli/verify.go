package cli

import (
	"context"
	"fmt"
)

// Verify prompts for an emailed verification token and redeems it. The
// flow works both logged-in and logged-out; on success the session's
// verified flag is refreshed where one exists.
func (a *App) Verify(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Verification token", a.out)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Fprintln(a.out, "A token is required.")
		return nil
	}

	result, err := a.sessions.VerifyEmail(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if result.Message != "" {
		fmt.Fprintln(a.out, result.Message)
	} else {
		fmt.Fprintln(a.out, "Email verified.")
	}
	if result.RedirectTo != "" {
		fmt.Fprintf(a.out, "Continue at: %s\n", result.RedirectTo)
	}
	a.printRoute()
	return nil
}
