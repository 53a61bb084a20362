// Package reporting renders a completed simulation as a human-readable
// report for the CLI front end.
package reporting

import (
	"time"

	"venture-sim-lab/internal/domain"
)

// Report bundles one simulation run with its context for rendering.
type Report struct {
	GeneratedAt time.Time
	Trials      int
	Seed        uint64
	Metrics     *domain.SummaryMetrics
}
