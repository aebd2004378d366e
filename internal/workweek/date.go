// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package workweek

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "YYYY-MM-DD"

var dateRe = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2})$`)

// ParseDate parses a YYYY-MM-DD date and checks that it exists.
func ParseDate(val string) (datetime.CalendarDate, error) {
	m := dateRe.FindStringSubmatch(val)
	if m == nil {
		return datetime.CalendarDate{}, fmt.Errorf("invalid date %q, expected format %s", val, DateLayout)
	}
	year, _ := strconv.Atoi(m[1])
	month, err := datetime.ParseNumericMonth(m[2])
	if err != nil {
		return datetime.CalendarDate{}, err
	}
	day, _ := strconv.Atoi(m[3])
	d := datetime.CalendarDate{Year: year, Month: month, Day: day}
	if err := Validate(d); err != nil {
		return datetime.CalendarDate{}, err
	}
	return d, nil
}

// FormatDate formats d as YYYY-MM-DD.
func FormatDate(d datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) datetime.CalendarDate {
	return datetime.CalendarDate{Year: t.Year(), Month: datetime.Month(t.Month()), Day: t.Day()}
}
