// Package dateparse normalizes the date formats found in statement
// exports and in the destination workbook into calendar dates.
package dateparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrUnparseable is returned when a value matches none of the known layouts.
var ErrUnparseable = errors.New("unparseable date")

// layouts are tried in order; the first successful parse wins.
var layouts = []string{
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// Parse normalizes a textual date into a calendar date (midnight UTC,
// no time component). Empty or unrecognized input returns ErrUnparseable.
func Parse(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparseable)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, value)
}

// ParseCell normalizes a raw spreadsheet cell that may hold either a
// textual date or a date serial. Date-typed cells come back from a raw
// read as the serial number, not as display text.
func ParseCell(value string) (time.Time, error) {
	if t, err := Parse(value); err == nil {
		return t, nil
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, value)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: serial %q", ErrUnparseable, value)
	}
	return Truncate(t), nil
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
