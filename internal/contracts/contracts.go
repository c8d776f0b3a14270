// Package contracts maps calendar months to the letters that identify monthly
// option series: calls A through L, puts M through X, January first.
package contracts

import (
	"fmt"
	"strings"
	"time"

	"github.com/jwaldner/expiry/internal/calendar"
)

// Code is the call/put letter pair of one expiry month.
type Code struct {
	Call string `json:"call"`
	Put  string `json:"put"`
}

// Entry is one row of the full contract table.
type Entry struct {
	Month     time.Month
	MonthName string
	Call      string
	Put       string
}

// MonthNamer supplies the display name of a month. Names are a presentation
// concern; the letter mapping never depends on them.
type MonthNamer interface {
	MonthName(month time.Month) string
}

// MonthNamerFunc adapts a plain function to MonthNamer.
type MonthNamerFunc func(month time.Month) string

func (f MonthNamerFunc) MonthName(month time.Month) string {
	return f(month)
}

// EnglishMonths names months with time.Month's own String.
var EnglishMonths MonthNamer = MonthNamerFunc(func(month time.Month) string {
	return month.String()
})

var codes = [12]Code{
	{Call: "A", Put: "M"},
	{Call: "B", Put: "N"},
	{Call: "C", Put: "O"},
	{Call: "D", Put: "P"},
	{Call: "E", Put: "Q"},
	{Call: "F", Put: "R"},
	{Call: "G", Put: "S"},
	{Call: "H", Put: "T"},
	{Call: "I", Put: "U"},
	{Call: "J", Put: "V"},
	{Call: "K", Put: "W"},
	{Call: "L", Put: "X"},
}

// CodesForMonth returns the letters of the given month's series.
func CodesForMonth(month time.Month) (Code, error) {
	if !calendar.ValidMonth(month) {
		return Code{}, fmt.Errorf("contract codes for month %d: %w", int(month), calendar.ErrInvalidMonth)
	}
	return codes[month-1], nil
}

// FullTable lists all twelve months in calendar order. A nil namer falls
// back to English month names.
func FullTable(names MonthNamer) []Entry {
	if names == nil {
		names = EnglishMonths
	}

	table := make([]Entry, 0, len(codes))
	for i, code := range codes {
		month := time.Month(i + 1)
		table = append(table, Entry{
			Month:     month,
			MonthName: names.MonthName(month),
			Call:      code.Call,
			Put:       code.Put,
		})
	}
	return table
}

// MonthForLetter resolves a contract letter back to its month and side.
// Matching is case-insensitive.
func MonthForLetter(letter string) (time.Month, OptionType, error) {
	l := strings.ToUpper(strings.TrimSpace(letter))
	for i, code := range codes {
		switch l {
		case code.Call:
			return time.Month(i + 1), Call, nil
		case code.Put:
			return time.Month(i + 1), Put, nil
		}
	}
	return 0, "", fmt.Errorf("letter %q: %w", letter, ErrUnknownLetter)
}
