package cli

import (
	"strconv"
	"strings"

	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

// formatAnalysis renders the one-line summary shared by check and repl:
//
//	441 status=valid length=3 balls=3 siteswap=true jugglable=true
func formatAnalysis(a siteswap.Analysis) string {
	var b strings.Builder

	canonical := a.Pattern.String()
	if canonical == "" {
		canonical = "-"
	}

	b.WriteString(canonical)
	b.WriteString(" status=")
	b.WriteString(a.Status.String())
	b.WriteString(" length=")
	b.WriteString(strconv.Itoa(a.Length))
	b.WriteString(" balls=")
	b.WriteString(formatBalls(a))
	b.WriteString(" siteswap=")
	b.WriteString(strconv.FormatBool(a.Siteswap))
	b.WriteString(" jugglable=")
	b.WriteString(strconv.FormatBool(a.Jugglable))

	return b.String()
}

// formatBalls shows the average throw height with at most two decimals,
// or "-" for empty input.
func formatBalls(a siteswap.Analysis) string {
	if !a.HasAverage {
		return "-"
	}

	s := strconv.FormatFloat(a.Average, 'f', 2, 64)

	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
