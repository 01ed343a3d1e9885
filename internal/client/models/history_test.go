package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHistory_NewestFirst(t *testing.T) {
	raw := "alice|2024-01-01T10:00:00Z|edit;bob|2024-01-02T10:00:00Z|checkout"

	entries := ParseHistory(raw)
	require.Len(t, entries, 2)

	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, "Checkout", entries[0].Label())
	assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), entries[0].Time)

	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, "Edited", entries[1].Label())
}

func TestParseHistory_Empty(t *testing.T) {
	assert.Nil(t, ParseHistory(""))
	assert.Nil(t, ParseHistory(";;"))
}

func TestParseHistory_MalformedFields(t *testing.T) {
	entries := ParseHistory("|not-a-time|")
	require.Len(t, entries, 1)

	assert.Equal(t, "unknown", entries[0].Username)
	assert.True(t, entries[0].Time.IsZero())
	assert.Equal(t, "Edited", entries[0].Label())
}

func TestParseHistory_UseVisitLabel(t *testing.T) {
	entries := ParseHistory("carol|2024-03-05T09:30:00Z|use-visit")
	require.Len(t, entries, 1)
	assert.Equal(t, "Used Visit", entries[0].Label())
}
