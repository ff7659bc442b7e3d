package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllLayoutsAgree(t *testing.T) {
	want := time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"13-11-2025", "13.11.2025", "2025-11-13", "13/11/2025"} {
		got, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "input %q parsed to %v", input, got)
	}
}

func TestParse_SlashLayoutPriority(t *testing.T) {
	// Day-month wins over month-day for ambiguous slash dates.
	got, err := Parse("05/11/2025")
	require.NoError(t, err)
	assert.Equal(t, time.November, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParse_MonthDaySlash(t *testing.T) {
	// A date invalid as day-month falls through to month-day.
	got, err := Parse("11/25/2025")
	require.NoError(t, err)
	assert.Equal(t, time.November, got.Month())
	assert.Equal(t, 25, got.Day())
}

func TestParse_NoTimeComponent(t *testing.T) {
	got, err := Parse("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestParse_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "13-13-2025", "2025/11/13"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrUnparseable, "input %q", input)
	}
}

func TestParseCell_Serial(t *testing.T) {
	// A date-typed cell read raw yields the serial, not display text.
	got, err := ParseCell("45974")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)))
}

func TestParseCell_SerialWithTimeFraction(t *testing.T) {
	got, err := ParseCell("45974.625")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)))
}

func TestParseCell_TextualDate(t *testing.T) {
	got, err := ParseCell("13.11.2025")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)))
}

func TestParseCell_Unparseable(t *testing.T) {
	for _, input := range []string{"", "Migros", "-1"} {
		_, err := ParseCell(input)
		assert.ErrorIs(t, err, ErrUnparseable, "input %q", input)
	}
}

func TestTruncate(t *testing.T) {
	ts := time.Date(2025, 11, 13, 14, 7, 59, 12345, time.Local)
	got := Truncate(ts)
	assert.True(t, got.Equal(time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)))
}
