// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package workweek computes work-week numbers. Work week 1 starts on the
// first Sunday on or after January 1 and each subsequent week starts on
// the following Sunday.
package workweek

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Supported year range. Years outside it cannot be written as YYYY-MM-DD.
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidDate is the sentinel matched by every InvalidDateError.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError reports a date the calculator cannot work with.
type InvalidDateError struct {
	Date   datetime.CalendarDate
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d: %s", e.Date.Year, int(e.Date.Month), e.Date.Day, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// Policy controls how dates before the year's first Sunday are numbered.
type Policy int

const (
	// PolicyZero numbers pre-anchor dates as work week 0.
	PolicyZero Policy = iota
	// PolicyPreviousYear numbers pre-anchor dates with the last work week
	// of the previous year.
	PolicyPreviousYear
)

var policyNames = map[Policy]string{
	PolicyZero:         "zero",
	PolicyPreviousYear: "previous-year",
}

// PolicyNames lists the accepted policy names.
func PolicyNames() []string {
	return []string{policyNames[PolicyZero], policyNames[PolicyPreviousYear]}
}

func (p Policy) String() string {
	if n, ok := policyNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a policy name as returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	for p, n := range policyNames {
		if n == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown pre-anchor policy %q (want one of %v)", s, PolicyNames())
}

// Validate checks that d is a real calendar date in the supported range.
func Validate(d datetime.CalendarDate) error {
	if d.Year < MinYear || d.Year > MaxYear {
		return &InvalidDateError{Date: d, Reason: fmt.Sprintf("year outside %d-%d", MinYear, MaxYear)}
	}
	if d.Month < 1 || d.Month > 12 {
		return &InvalidDateError{Date: d, Reason: "month outside 1-12"}
	}
	if n := datetime.DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &InvalidDateError{Date: d, Reason: fmt.Sprintf("day outside 1-%d", n)}
	}
	return nil
}

// Ordinal returns the 1-based day of the year for a valid date.
func Ordinal(d datetime.CalendarDate) int {
	return d.Date().DayOfYear(d.Year)
}

// FirstSunday returns the first Sunday on or after January 1 of year.
func FirstSunday(year int) (datetime.CalendarDate, error) {
	jan1 := datetime.CalendarDate{Year: year, Month: 1, Day: 1}
	if err := Validate(jan1); err != nil {
		return datetime.CalendarDate{}, err
	}
	wd := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
	jan1.Day += (7 - int(wd)) % 7
	return jan1, nil
}

// Calculate returns the work week of d, numbering pre-anchor dates as 0.
func Calculate(d datetime.CalendarDate) (int, error) {
	return CalculateWithPolicy(d, PolicyZero)
}

// CalculateWithPolicy returns the work week of d using policy for dates
// that fall before the year's first Sunday.
func CalculateWithPolicy(d datetime.CalendarDate, policy Policy) (int, error) {
	if err := Validate(d); err != nil {
		return 0, err
	}
	anchor, err := FirstSunday(d.Year)
	if err != nil {
		return 0, err
	}
	days := Ordinal(d) - Ordinal(anchor)
	if days >= 0 {
		return days/7 + 1, nil
	}
	switch policy {
	case PolicyZero:
		return 0, nil
	case PolicyPreviousYear:
		// Dec 31 is always on or after its year's anchor.
		return CalculateWithPolicy(datetime.CalendarDate{Year: d.Year - 1, Month: 12, Day: 31}, PolicyZero)
	default:
		return 0, fmt.Errorf("unsupported pre-anchor policy: %v", policy)
	}
}
