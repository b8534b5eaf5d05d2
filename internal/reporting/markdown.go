package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Pricing Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Run: %s | Paths: %d | Seed: %d\n\n", r.RunID, r.Paths, r.Seed))

	// Prices
	sb.WriteString("## Prices\n\n")
	if len(r.Rows) > 0 {
		sb.WriteString("| Name | Kind | Payoff | Expiry | Price | Std Err | Discount |\n")
		sb.WriteString("|------|------|--------|--------|-------|---------|----------|\n")
		for _, row := range r.Rows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.4f | %.4f | %.4f | %.4f |\n",
				row.Name, row.Kind, row.PayoffKind,
				row.Expiry, row.Price, row.StandardError, row.Discount))
		}
	} else {
		sb.WriteString("No contracts priced.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
