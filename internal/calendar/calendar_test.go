package calendar_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/calendar"
	"github.com/tartampluch/go-addressbook/internal/config"
)

func TestExport(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Alice", "", "", "01-01-1990"))
	require.NoError(t, b.AddRecord("Newborn", "", "", "10-03-2025"))
	require.NoError(t, b.AddRecord("No Birthday", "123-45-67", "", ""))

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	count, err := calendar.Export(&buf, b.Records(), now, "")
	require.NoError(t, err)

	// Alice: 2024, 2025, 2026. Newborn: 2025, 2026.
	assert.Equal(t, 5, count)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Birthday: Alice")
	assert.Contains(t, out, "20240101")
	assert.Contains(t, out, "20260101")
	assert.NotContains(t, out, "20240310", "No event before birth")
	assert.NotContains(t, out, "No Birthday")
	assert.NotContains(t, out, "VALARM")

	dec := ical.NewDecoder(strings.NewReader(out))
	cal, err := dec.Decode()
	require.NoError(t, err, "Output must be parseable iCalendar")
	assert.Len(t, cal.Events(), 5)
}

func TestExport_Alarm(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Alice", "", "", "01-01-1990"))

	var buf bytes.Buffer
	_, err := calendar.Export(&buf, b.Records(), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "-P1D")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VALARM")
	assert.Contains(t, out, "ACTION:DISPLAY")
	assert.Contains(t, out, "TRIGGER:-P1D")
}

func TestExport_LeapDay(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddRecord("Leap Baby", "", "", "29-02-2000"))

	var buf bytes.Buffer
	_, err := calendar.Export(&buf, b.Records(), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "20240229", "Leap years keep February 29th")
	assert.Contains(t, out, "20250301", "Other years move to March 1st")
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	count, err := calendar.Export(&buf, nil, time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, config.StubVCalendar, buf.String())
}
