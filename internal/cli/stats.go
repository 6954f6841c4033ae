package cli

import (
	"context"
	"fmt"

	"github.com/hbridge/careconnect-cli/internal/api"
)

// Stats prints the platform counters shown on the landing page. A backend
// failure falls back to zero-value placeholders rather than an error.
func (a *App) Stats(ctx context.Context) error {
	stats := api.StatsOrFallback(ctx, a.gateway, a.log)
	fmt.Fprintf(a.out, "Care workers:       %s\n", stats.Display.Workers)
	fmt.Fprintf(a.out, "Care homes:         %s\n", stats.Display.CareHomes)
	fmt.Fprintf(a.out, "Completed profiles: %s\n", stats.Display.Completed)
	fmt.Fprintf(a.out, "Verified homes:     %s\n", stats.Display.Verified)
	return nil
}

// Qualifications lists the recognised care qualifications, mandatory ones
// marked. An unreachable backend yields an empty list, not an error.
func (a *App) Qualifications(ctx context.Context) error {
	quals := api.QualificationsOrFallback(ctx, a.gateway, a.log)
	if len(quals) == 0 {
		fmt.Fprintln(a.out, "No qualifications available right now.")
		return nil
	}
	for _, q := range quals {
		marker := " "
		if q.IsMandatory {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-12s %s (%s)\n", marker, q.Code, q.Name, q.Category)
	}
	fmt.Fprintln(a.out, "* mandatory")
	return nil
}
