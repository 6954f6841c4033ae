package api

import (
	"context"

	"github.com/hbridge/careconnect-cli/internal/logging"
)

// FallbackStats is the documented zero-value shown when the stats endpoint
// is down, so the landing view renders instead of breaking.
func FallbackStats() *StatsResponse {
	return &StatsResponse{
		Display: StatsDisplay{
			Workers:   "0+",
			CareHomes: "0+",
			Completed: "0",
			Verified:  "0",
		},
	}
}

// StatsOrFallback fetches the public statistics, degrading to
// FallbackStats on any gateway failure. The error is logged, never
// propagated.
func StatsOrFallback(ctx context.Context, g Gateway, log logging.Logger) *StatsResponse {
	stats, err := g.PublicStats(ctx)
	if err != nil {
		log.Warn(ctx, "public stats unavailable, using fallback", "error", err)
		return FallbackStats()
	}
	return stats
}

// QualificationsOrFallback fetches the qualification list, degrading to an
// empty list on any gateway failure.
func QualificationsOrFallback(ctx context.Context, g Gateway, log logging.Logger) []Qualification {
	resp, err := g.Qualifications(ctx)
	if err != nil {
		log.Warn(ctx, "qualifications unavailable, using fallback", "error", err)
		return []Qualification{}
	}
	if resp.Qualifications == nil {
		return []Qualification{}
	}
	return resp.Qualifications
}
