package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a Markdown string. Section
// pseudo-entries in the metric bundle become subheadings; numeric
// values are formatted to four decimals, large currency-scale values
// without decimals.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Venture Simulation Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Trials: %d", r.Trials))
	if r.Seed != 0 {
		sb.WriteString(fmt.Sprintf(" | Seed: %d", r.Seed))
	}
	sb.WriteString("\n")

	inTable := false
	for _, e := range r.Metrics.Entries() {
		if s, ok := e.Value.(string); ok && s == "" && strings.HasPrefix(e.Label, "--- ") {
			title := strings.TrimSpace(strings.Trim(e.Label, "-"))
			sb.WriteString(fmt.Sprintf("\n## %s\n\n", title))
			sb.WriteString("| Metric | Value |\n")
			sb.WriteString("|--------|-------|\n")
			inTable = true
			continue
		}
		if !inTable {
			// A bundle that does not open with a section renders as a
			// single table.
			sb.WriteString("\n| Metric | Value |\n")
			sb.WriteString("|--------|-------|\n")
			inTable = true
		}
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", e.Label, formatValue(e.Value)))
	}

	return sb.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		switch {
		case math.IsInf(x, 1):
			return "Inf"
		case math.IsInf(x, -1):
			return "-Inf"
		case math.IsNaN(x):
			return "NaN"
		case math.Abs(x) >= 1e6:
			return fmt.Sprintf("%.0f", x)
		default:
			return fmt.Sprintf("%.4f", x)
		}
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
