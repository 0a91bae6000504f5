package export

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoURI_AddressAndScheme(t *testing.T) {
	uri := MailtoURI("boss@example.com", time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), nil)
	assert.True(t, strings.HasPrefix(uri, "mailto:boss@example.com?"))
}

func TestMailtoURI_SubjectCoversMonthRange(t *testing.T) {
	uri := MailtoURI("boss@example.com", time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local), nil)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "Working time 2024-02-01 - 2024-02-29", q.Get("subject"))
}

func TestMailtoURI_BodyJoinsLines(t *testing.T) {
	lines := []string{`"2025-06-01","09:00","17:00","demo"`, `"2025-06-02","","",""`}
	uri := MailtoURI("boss@example.com", time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), lines)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n"), parsed.Query().Get("body"))
}

func TestMailtoURI_SpacesEncodeAsPercent20(t *testing.T) {
	uri := MailtoURI("boss@example.com", time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), nil)
	assert.Contains(t, uri, "Working%20time")
	assert.NotContains(t, uri, "+", "mail clients do not form-decode '+'")
}
