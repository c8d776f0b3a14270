package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwaldner/expiry/internal/expiry"
	"github.com/jwaldner/expiry/internal/locale"
)

func newTestRequestService() *RequestService {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 02:00 UTC is still the previous evening in São Paulo.
	clock := func() time.Time { return time.Date(2024, 1, 20, 2, 0, 0, 0, time.UTC) }
	return NewRequestService(saoPaulo, "pt-BR").WithClock(clock)
}

func TestParseSnapshotRequest(t *testing.T) {
	s := newTestRequestService()

	t.Run("defaults to today in the configured location", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/expiry", nil)
		q, err := s.ParseSnapshotRequest(r)
		require.NoError(t, err)

		assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 19}, q.Date)
		assert.Same(t, locale.PortugueseBR, q.Locale)
	})

	t.Run("query date and locale", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/expiry?date=2023-12-15&locale=en-US&unused=1", nil)
		q, err := s.ParseSnapshotRequest(r)
		require.NoError(t, err)

		assert.Equal(t, civil.Date{Year: 2023, Month: time.December, Day: 15}, q.Date)
		assert.Same(t, locale.EnglishUS, q.Locale)
	})

	t.Run("route variable wins over query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/expiry/2024-06-10?date=2023-01-01", nil)
		r = mux.SetURLVars(r, map[string]string{"date": "2024-06-10"})
		q, err := s.ParseSnapshotRequest(r)
		require.NoError(t, err)

		assert.Equal(t, civil.Date{Year: 2024, Month: time.June, Day: 10}, q.Date)
	})

	t.Run("accept-language header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/expiry", nil)
		r.Header.Set("Accept-Language", "en-GB,en;q=0.9")
		q, err := s.ParseSnapshotRequest(r)
		require.NoError(t, err)

		assert.Same(t, locale.EnglishUS, q.Locale)
	})

	t.Run("invalid date", func(t *testing.T) {
		for _, bad := range []string{"2023-02-29", "19/01/2024", "2024-13-01"} {
			r := httptest.NewRequest("GET", "/api/expiry?date="+bad, nil)
			_, err := s.ParseSnapshotRequest(r)
			assert.ErrorIs(t, err, expiry.ErrInvalidDate, bad)
		}
	})
}

func TestParseTableRequest(t *testing.T) {
	s := newTestRequestService()

	r := httptest.NewRequest("GET", "/api/contracts", nil)
	q, err := s.ParseTableRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "json", q.Format)
	assert.Same(t, locale.PortugueseBR, q.Locale)

	r = httptest.NewRequest("GET", "/api/contracts?format=CSV&locale=en", nil)
	q, err = s.ParseTableRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "csv", q.Format)
	assert.Same(t, locale.EnglishUS, q.Locale)

	r = httptest.NewRequest("GET", "/api/contracts?format=xml", nil)
	_, err = s.ParseTableRequest(r)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestResolveLocaleFallsBackToDefault(t *testing.T) {
	s := NewRequestService(nil, "en-US")

	assert.Same(t, locale.EnglishUS, s.ResolveLocale("", ""))
	assert.Same(t, locale.EnglishUS, s.ResolveLocale("ja", "de-DE"))
	assert.Same(t, locale.PortugueseBR, s.ResolveLocale("pt", ""))
}
