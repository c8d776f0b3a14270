package expiry

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwaldner/expiry/internal/contracts"
)

func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

func TestBuildMidMonth(t *testing.T) {
	s, err := Build(date(2024, 1, 10), nil)
	require.NoError(t, err)

	assert.Equal(t, time.January, s.Month)
	assert.Equal(t, "January", s.MonthName)
	assert.Equal(t, contracts.Code{Call: "A", Put: "M"}, s.Code)
	assert.Equal(t, date(2024, 1, 19), s.CurrentExpiry)
	assert.Equal(t, date(2024, 2, 16), s.NextExpiry)
	assert.Equal(t, 7, s.DaysToCurrentExpiry)
	assert.Equal(t, 27, s.DaysToNextExpiry)
	assert.False(t, s.IsCurrentExpiryToday)
	assert.False(t, s.IsNextExpiryToday)
	assert.Equal(t, Pending, s.CurrentStatus())
	assert.Equal(t, Pending, s.NextStatus())
}

func TestBuildOnExpiryDay(t *testing.T) {
	s, err := Build(date(2024, 1, 19), nil)
	require.NoError(t, err)

	assert.True(t, s.IsCurrentExpiryToday)
	assert.Equal(t, 0, s.DaysToCurrentExpiry)
	assert.Equal(t, ExpiryDay, s.CurrentStatus())
	assert.Equal(t, 20, s.DaysToNextExpiry)
}

func TestBuildAfterExpiry(t *testing.T) {
	t.Run("saturday after expiry", func(t *testing.T) {
		s, err := Build(date(2024, 1, 20), nil)
		require.NoError(t, err)

		assert.False(t, s.IsCurrentExpiryToday)
		// Only a weekend day separates the two dates; the count is still negative.
		assert.Equal(t, -1, s.DaysToCurrentExpiry)
		assert.Equal(t, Expired, s.CurrentStatus())
		assert.Equal(t, contracts.Code{Call: "A", Put: "M"}, s.Code)
	})

	t.Run("monday after expiry", func(t *testing.T) {
		s, err := Build(date(2024, 1, 22), nil)
		require.NoError(t, err)

		assert.Equal(t, -1, s.DaysToCurrentExpiry)
		assert.Equal(t, Expired, s.CurrentStatus())
		assert.Equal(t, Pending, s.NextStatus())
	})

	t.Run("end of month", func(t *testing.T) {
		s, err := Build(date(2024, 1, 31), nil)
		require.NoError(t, err)

		assert.Equal(t, -8, s.DaysToCurrentExpiry)
		assert.Equal(t, date(2024, 2, 16), s.NextExpiry)
	})
}

func TestBuildDecemberRollsIntoNextYear(t *testing.T) {
	s, err := Build(date(2023, 12, 15), nil)
	require.NoError(t, err)

	assert.Equal(t, contracts.Code{Call: "L", Put: "X"}, s.Code)
	assert.Equal(t, date(2023, 12, 15), s.CurrentExpiry)
	assert.True(t, s.IsCurrentExpiryToday)
	assert.Equal(t, date(2024, 1, 19), s.NextExpiry)
	assert.Equal(t, 25, s.DaysToNextExpiry)
}

func TestBuildFebruary(t *testing.T) {
	cases := []struct {
		name    string
		ref     civil.Date
		current civil.Date
		next    civil.Date
	}{
		{"leap year", date(2024, 2, 10), date(2024, 2, 16), date(2024, 3, 15)},
		{"common year", date(2023, 2, 10), date(2023, 2, 17), date(2023, 3, 17)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Build(tc.ref, nil)
			require.NoError(t, err)
			assert.Equal(t, contracts.Code{Call: "B", Put: "N"}, s.Code)
			assert.Equal(t, tc.current, s.CurrentExpiry)
			assert.Equal(t, tc.next, s.NextExpiry)
		})
	}
}

func TestBuildUsesNamer(t *testing.T) {
	names := contracts.MonthNamerFunc(func(month time.Month) string {
		return "Junho"
	})

	s, err := Build(date(2024, 6, 10), names)
	require.NoError(t, err)

	assert.Equal(t, "Junho", s.MonthName)
	assert.Equal(t, contracts.Code{Call: "F", Put: "R"}, s.Code)
	assert.Equal(t, 9, s.DaysToCurrentExpiry)
	assert.Equal(t, 29, s.DaysToNextExpiry)
}

func TestBuildIsRepeatable(t *testing.T) {
	ref := date(2024, 11, 3)
	first, err := Build(ref, nil)
	require.NoError(t, err)

	second, err := Build(ref, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildInvalidDate(t *testing.T) {
	_, err := Build(civil.Date{Year: 2023, Month: time.February, Day: 29}, nil)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Build(civil.Date{Year: 2024, Month: 13, Day: 1}, nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBuildAtIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	late, err := BuildAt(time.Date(2024, 1, 19, 23, 30, 0, 0, loc), nil)
	require.NoError(t, err)
	early, err := BuildAt(time.Date(2024, 1, 19, 0, 5, 0, 0, loc), nil)
	require.NoError(t, err)

	assert.Equal(t, early, late)
	assert.True(t, late.IsCurrentExpiryToday)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, ExpiryDay, StatusOf(0, true))
	assert.Equal(t, Pending, StatusOf(0, false))
	assert.Equal(t, Pending, StatusOf(3, false))
	assert.Equal(t, Expired, StatusOf(-1, false))
	assert.Equal(t, "expired", Expired.String())
	assert.Equal(t, "expiry_day", ExpiryDay.String())
	assert.Equal(t, "pending", Pending.String())
}
