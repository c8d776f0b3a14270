// Package expiry builds the per-date view of the monthly option cycle: the
// reference month's contract letters, this month's and next month's third
// Friday, and the business days left until each.
package expiry

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/jwaldner/expiry/internal/calendar"
	"github.com/jwaldner/expiry/internal/contracts"
)

// Snapshot is the expiry state seen from one reference date. It is a plain
// value; build a new one per date.
type Snapshot struct {
	Reference            civil.Date     `json:"reference_date"`
	Month                time.Month     `json:"month"`
	MonthName            string         `json:"month_name"`
	Code                 contracts.Code `json:"code"`
	CurrentExpiry        civil.Date     `json:"current_expiry"`
	NextExpiry           civil.Date     `json:"next_expiry"`
	DaysToCurrentExpiry  int            `json:"days_to_current_expiry"`
	DaysToNextExpiry     int            `json:"days_to_next_expiry"`
	IsCurrentExpiryToday bool           `json:"is_current_expiry_today"`
	IsNextExpiryToday    bool           `json:"is_next_expiry_today"`
}

// Build computes the snapshot for ref. The contract code always describes
// ref's own month, even after that month's expiry has passed.
func Build(ref civil.Date, names contracts.MonthNamer) (Snapshot, error) {
	if !ref.IsValid() {
		return Snapshot{}, fmt.Errorf("build snapshot for %s: %w", ref, ErrInvalidDate)
	}
	if names == nil {
		names = contracts.EnglishMonths
	}

	code, err := contracts.CodesForMonth(ref.Month)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build snapshot: %w", err)
	}

	current, err := calendar.ThirdFriday(ref.Year, ref.Month)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build snapshot: %w", err)
	}

	nextYear, nextMonth := calendar.NextMonth(ref.Year, ref.Month)
	next, err := calendar.ThirdFriday(nextYear, nextMonth)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build snapshot: %w", err)
	}

	return Snapshot{
		Reference:            ref,
		Month:                ref.Month,
		MonthName:            names.MonthName(ref.Month),
		Code:                 code,
		CurrentExpiry:        current,
		NextExpiry:           next,
		DaysToCurrentExpiry:  calendar.CountBusinessDays(ref, current),
		DaysToNextExpiry:     calendar.CountBusinessDays(ref, next),
		IsCurrentExpiryToday: ref == current,
		IsNextExpiryToday:    ref == next,
	}, nil
}

// BuildAt builds the snapshot for the calendar day t falls on in its own
// location.
func BuildAt(t time.Time, names contracts.MonthNamer) (Snapshot, error) {
	return Build(calendar.DateOf(t), names)
}

// CurrentStatus classifies the current month's expiry relative to the
// reference date.
func (s Snapshot) CurrentStatus() Status {
	return StatusOf(s.DaysToCurrentExpiry, s.IsCurrentExpiryToday)
}

// NextStatus classifies next month's expiry relative to the reference date.
func (s Snapshot) NextStatus() Status {
	return StatusOf(s.DaysToNextExpiry, s.IsNextExpiryToday)
}
