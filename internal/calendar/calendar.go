// Package calendar holds the date arithmetic behind monthly option expiries:
// third-Friday resolution and weekday counting. A business day is any day
// that is not a Saturday or a Sunday; no holiday calendar is applied.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidMonth is returned for month numbers outside 1..12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// DateOf returns the calendar day of t in t's location. Time of day is dropped,
// so two timestamps on the same day yield equal dates.
func DateOf(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// Weekday returns the day of the week d falls on.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// IsBusinessDay reports whether d is Monday through Friday.
func IsBusinessDay(d civil.Date) bool {
	wd := Weekday(d)
	return wd != time.Saturday && wd != time.Sunday
}

// ValidMonth reports whether month is within January..December.
func ValidMonth(month time.Month) bool {
	return month >= time.January && month <= time.December
}

// ThirdFriday returns the third Friday of the given month, which always lands
// on day 15 through 21.
func ThirdFriday(year int, month time.Month) (civil.Date, error) {
	if !ValidMonth(month) {
		return civil.Date{}, fmt.Errorf("third friday of %d-%02d: %w", year, int(month), ErrInvalidMonth)
	}

	first := civil.Date{Year: year, Month: month, Day: 1}
	firstFriday := 1 + (int(time.Friday)-int(Weekday(first))+7)%7

	return civil.Date{Year: year, Month: month, Day: firstFriday + 14}, nil
}

// NextMonth returns the calendar month after (year, month), rolling December
// into January of the following year.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// NextExpiration returns the first monthly expiry on or after ref: the third
// Friday of ref's month, or the next month's once that day has passed.
func NextExpiration(ref civil.Date) (civil.Date, error) {
	current, err := ThirdFriday(ref.Year, ref.Month)
	if err != nil {
		return civil.Date{}, err
	}

	if !ref.After(current) {
		return current, nil
	}

	year, month := NextMonth(ref.Year, ref.Month)
	return ThirdFriday(year, month)
}

// CountBusinessDays counts weekdays after start up to and including end.
//
// When end precedes start the result is the negated forward count from end to
// start. A reversed range with no weekday in it (a bare weekend) returns -1,
// never 0, so "end is in the past" stays distinguishable from "same day".
func CountBusinessDays(start, end civil.Date) int {
	switch {
	case start == end:
		return 0
	case start.After(end):
		n := countForward(end, start)
		if n == 0 {
			return -1
		}
		return -n
	}

	return countForward(start, end)
}

func countForward(start, end civil.Date) int {
	count := 0
	for d := start.AddDays(1); !d.After(end); d = d.AddDays(1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}
