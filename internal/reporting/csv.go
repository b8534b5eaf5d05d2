package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders the priced rows as a CSV string.
func RenderCSV(rows []Row) string {
	var sb strings.Builder

	sb.WriteString("name,kind,payoff,expiry,price,standard_error,discount\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%.6f,%.6f,%.6f,%.6f\n",
			r.Name,
			r.Kind,
			r.PayoffKind,
			r.Expiry,
			r.Price,
			r.StandardError,
			r.Discount,
		))
	}

	return sb.String()
}
