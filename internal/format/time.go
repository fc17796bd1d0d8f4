// Package format renders timestamps the way the user configured them.
package format

import (
	"strings"
	"time"
)

// Formatter holds the layouts resolved from the display_date and
// display_time config keys.
type Formatter struct {
	date      string
	dateShort string
	clock     string
}

// New resolves displayDate (a preset such as "dd/mm/yyyy" or a Go layout)
// and displayTime ("12h" or "24h"). Empty values select the defaults.
func New(displayDate, displayTime string) Formatter {
	return Formatter{
		date:      dateLayout(displayDate),
		dateShort: dateLayoutShort(displayDate),
		clock:     clockLayout(displayTime),
	}
}

// Date formats the date portion.
// Example output: "23/01/2024" or "01/23/2024" or "2024-01-23"
func (f Formatter) Date(t time.Time) string {
	return t.Format(f.date)
}

// Time formats the time with seconds.
// Example output: "15:04:05" or "3:04:05 PM"
func (f Formatter) Time(t time.Time) string {
	return t.Format(f.clock)
}

// Full formats date and time.
// Example output: "23/01/2024 15:04:05"
func (f Formatter) Full(t time.Time) string {
	return f.Date(t) + " " + f.Time(t)
}

// Stamp formats the time alone for today and prefixes the short date
// (no year) otherwise.
// Example output: "15:04:05" or "Jan 22 15:04:05"
func (f Formatter) Stamp(t, now time.Time) string {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return f.Time(t)
	}
	return t.Format(f.dateShort) + " " + f.Time(t)
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "":
		return "Jan 02 2006"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// custom Go layout
		return displayDate
	}
}

func dateLayoutShort(displayDate string) string {
	switch displayDate {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		short := displayDate
		for _, year := range []string{"2006", "/06", "-06", " 06"} {
			short = strings.ReplaceAll(short, year, "")
		}
		short = strings.Trim(strings.TrimSpace(short), "/-")
		if short == "" {
			return "Jan 02"
		}
		return short
	}
}

func clockLayout(displayTime string) string {
	if displayTime == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}
