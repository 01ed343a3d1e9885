package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"playcenter-console/internal/client/models"
)

func TestSanitize_StripsControlCharacters(t *testing.T) {
	assert.Equal(t, "Anu[31mx", sanitize("Anu\x1b[31mx"))
	assert.Equal(t, "ab", sanitize("a\x00\x07b"))
	assert.Equal(t, "plain", sanitize("plain"))
}

func TestFormatAmount_IndianGrouping(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{123, "₹123"},
		{1234, "₹1,234"},
		{123456, "₹1,23,456"},
		{1234567.5, "₹12,34,567.5"},
		{12345678, "₹1,23,45,678"},
		{-1500, "-₹1,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), "%v", tt.in)
	}
}

func TestFormatAmountStr(t *testing.T) {
	assert.Equal(t, "₹1,500", formatAmountStr("1500"))
	assert.Equal(t, "₹250.5", formatAmountStr("250.50"))
	assert.Equal(t, "-", formatAmountStr(""))
	assert.Equal(t, "n/a", formatAmountStr("n/a"))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}

func TestRenderTable_KeepsColorSequences(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	renderTable(&buf, []string{"Status"}, [][]string{{statusBadge(models.PartyConfirmed)}})

	assert.Contains(t, buf.String(), "\x1b[32mconfirmed\x1b[0m")
}

func TestStatusBadge_SanitizesRawValue(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	assert.Equal(t, "confXirmed", statusBadge("conf\x1bXirmed"))
	assert.Equal(t, "\x1b[32mconfirmed\x1b[0m", statusBadge("conf\x00irmed"))
}

func TestRemainingLabel(t *testing.T) {
	monthly := models.Package{PackageType: models.PackageMonthly}
	assert.Equal(t, "∞", remainingLabel(monthly))

	counted := models.Package{PackageType: models.Package10Visits, TotalVisits: "10", UsedVisits: "3"}
	assert.Equal(t, "7 of 10", remainingLabel(counted))
}

func TestStatusBadge_KeepsLabelText(t *testing.T) {
	for _, s := range []string{models.PartyBooked, models.PartyCancelled, models.PackageActive, "completed"} {
		assert.True(t, strings.Contains(statusBadge(s), s), s)
	}
}
