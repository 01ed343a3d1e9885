package models

import (
	"strings"
	"time"
)

// HistoryEntry is one line of a record's append-only update log. The wire
// encoding is a single string: entries joined by ';', fields joined by '|'
// in the order username, ISO timestamp, action tag.
type HistoryEntry struct {
	Username string
	Time     time.Time
	Action   string
}

// Label maps the action tag to its display name. Unknown tags count as edits.
func (e HistoryEntry) Label() string {
	switch e.Action {
	case "checkout":
		return "Checkout"
	case "use-visit":
		return "Used Visit"
	default:
		return "Edited"
	}
}

// ParseHistory decodes an update-history string into entries ordered most
// recent first. Empty or absent logs yield nil. Malformed fields fall back
// to "unknown" for the user and the edit action; an unparsable timestamp
// leaves Time zero.
func ParseHistory(raw string) []HistoryEntry {
	if raw == "" {
		return nil
	}

	var entries []HistoryEntry
	for _, part := range strings.Split(raw, ";") {
		if part == "" {
			continue
		}
		fields := strings.Split(part, "|")

		e := HistoryEntry{Username: "unknown", Action: "edit"}
		if len(fields) > 0 && fields[0] != "" {
			e.Username = fields[0]
		}
		if len(fields) > 1 && fields[1] != "" {
			if ts, err := time.Parse(time.RFC3339, fields[1]); err == nil {
				e.Time = ts
			}
		}
		if len(fields) > 2 && fields[2] != "" {
			e.Action = fields[2]
		}
		entries = append(entries, e)
	}

	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}
