package parser

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpoch is day 0 of the workbook serial date calendar.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxDateSerial bounds the serial range treated as a date (~year 2557).
const maxDateSerial = 240000

// dateLayouts are the calendar string formats accepted for date cells,
// day-first per the source workbooks.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// CoerceDate converts a raw cell into a calendar date. Numeric cells are
// interpreted as workbook date serials, strings are tried against the known
// layouts. Returns nil on anything unparseable; never an error.
func CoerceDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < 1 || serial > maxDateSerial {
			return nil
		}
		days := math.Floor(serial)
		t := excelEpoch.AddDate(0, 0, int(days))
		if frac := serial - days; frac > 0 {
			t = t.Add(time.Duration(frac * float64(24*time.Hour)))
		}
		return &t
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// CoerceNumber strips every rune that is not a digit, a decimal point or a
// leading minus sign, then parses. Returns nil unless the result is finite.
func CoerceNumber(raw string) *float64 {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// CoerceText trims surrounding whitespace. Returns nil when empty.
func CoerceText(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
