// Package dateutils turns date and time cells of the workbook into display strings.
package dateutils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Display layouts used in the report.
const (
	DateLayoutISO  = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// CommonFormats is the list of textual date formats accepted in date cells.
var CommonFormats = []string{
	DateLayoutISO,
	DateTimeLayout,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
}

// CommonTimeFormats is the list of textual time formats accepted in time cells.
var CommonTimeFormats = []string{
	TimeLayout,
	"15:04",
	"3:04 PM",
	"3:04:05 PM",
}

var spaces = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace.
func CleanDateString(s string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// FormatDateCell renders a date cell. Raw Excel serial numbers are converted;
// recognized textual dates are rewritten as ISO dates; anything else is
// returned cleaned but otherwise unchanged.
func FormatDateCell(raw string) string {
	raw = CleanDateString(raw)
	if raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial >= 1 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			t = t.Round(time.Second)
			if serial == math.Trunc(serial) {
				return t.Format(DateLayoutISO)
			}
			return t.Format(DateTimeLayout)
		}
	}
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			if layout == DateTimeLayout || strings.HasSuffix(layout, "15:04:05") {
				return t.Format(DateTimeLayout)
			}
			return t.Format(DateLayoutISO)
		}
	}
	return raw
}

// FormatTimeCell renders a time cell. Excel stores a time of day as a
// fraction of a day, and a full datetime serial keeps it in the fractional
// part; textual times are normalized to 15:04:05.
func FormatTimeCell(raw string) string {
	raw = CleanDateString(raw)
	if raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial >= 0 {
		fraction := serial - math.Trunc(serial)
		seconds := int(math.Round(fraction*24*60*60)) % (24 * 60 * 60)
		return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(seconds) * time.Second).Format(TimeLayout)
	}
	for _, layout := range CommonTimeFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimeLayout)
		}
	}
	return raw
}
