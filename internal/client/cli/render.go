package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"playcenter-console/internal/client/models"
)

// sanitize strips control characters from server-provided text before it
// reaches the terminal. Stored names must not be able to smuggle escape
// sequences into the output.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// renderTable prints rows as an ASCII table. Cells arrive ready to print:
// server-sourced text is sanitized where rows are built, so locally
// generated color sequences pass through intact.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

var (
	greenBadge  = color.New(color.FgGreen).SprintFunc()
	yellowBadge = color.New(color.FgYellow).SprintFunc()
	cyanBadge   = color.New(color.FgCyan).SprintFunc()
	redBadge    = color.New(color.FgRed).SprintFunc()
	boldText    = color.New(color.Bold).SprintFunc()
)

// statusBadge colors a status label the way the list pages show it. The raw
// server value is sanitized before any color wraps it.
func statusBadge(status string) string {
	status = sanitize(status)
	switch status {
	case models.PackageActive, models.PartyConfirmed:
		return greenBadge(status)
	case models.PartyBooked, "expiring":
		return yellowBadge(status)
	case models.PartyInProgress:
		return cyanBadge(status)
	case models.PartyCancelled:
		return redBadge(status)
	default:
		return status
	}
}

// formatAmount renders a rupee amount with Indian digit grouping, e.g.
// 1234567.5 becomes "₹12,34,567.5". Whole amounts carry no fraction.
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		grouped = strings.Join(groups, ",") + "," + tail
	}

	out := "₹" + grouped
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// formatAmountStr formats a wire amount (records carry amounts as strings).
// Non-numeric input is shown as-is.
func formatAmountStr(s string) string {
	if s == "" {
		return "-"
	}
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return sanitize(s)
	}
	return formatAmount(v)
}

// formatBytes renders a backup size in a human unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// orDash substitutes a dash for empty cell values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
