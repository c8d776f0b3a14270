package services

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/jwaldner/expiry/internal/calendar"
	"github.com/jwaldner/expiry/internal/dto"
	"github.com/jwaldner/expiry/internal/expiry"
	"github.com/jwaldner/expiry/internal/locale"
)

// SnapshotQuery is a parsed and defaulted snapshot request
type SnapshotQuery struct {
	Date   civil.Date
	Locale *locale.Locale
}

// TableQuery is a parsed and defaulted contract table request
type TableQuery struct {
	Locale *locale.Locale
	Format string
}

// RequestService handles HTTP request parsing
type RequestService struct {
	decoder       *schema.Decoder
	location      *time.Location
	defaultLocale string
	now           func() time.Time
}

// NewRequestService creates a new request service. "Today" is taken in loc;
// defaultLocale is used when neither the query nor Accept-Language match.
func NewRequestService(loc *time.Location, defaultLocale string) *RequestService {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if loc == nil {
		loc = time.UTC
	}

	return &RequestService{
		decoder:       decoder,
		location:      loc,
		defaultLocale: defaultLocale,
		now:           time.Now,
	}
}

// WithClock replaces the clock used to resolve "today"
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

// Today returns the current calendar day in the configured location
func (s *RequestService) Today() civil.Date {
	return calendar.DateOf(s.now().In(s.location))
}

// ParseSnapshotRequest parses an HTTP request into a SnapshotQuery. A {date}
// route variable takes precedence over the date query parameter.
func (s *RequestService) ParseSnapshotRequest(r *http.Request) (*SnapshotQuery, error) {
	var req dto.SnapshotRequest
	if err := s.decoder.Decode(&req, r.URL.Query()); err != nil {
		return nil, fmt.Errorf("%w: failed to decode request: %v", ErrBadRequest, err)
	}

	if v, ok := mux.Vars(r)["date"]; ok {
		req.Date = v
	}

	query := &SnapshotQuery{
		Date:   s.Today(),
		Locale: s.ResolveLocale(req.Locale, r.Header.Get("Accept-Language")),
	}

	if strings.TrimSpace(req.Date) != "" {
		d, err := ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		query.Date = d
	}

	return query, nil
}

// ParseTableRequest parses an HTTP request into a TableQuery
func (s *RequestService) ParseTableRequest(r *http.Request) (*TableQuery, error) {
	var req dto.TableRequest
	if err := s.decoder.Decode(&req, r.URL.Query()); err != nil {
		return nil, fmt.Errorf("%w: failed to decode request: %v", ErrBadRequest, err)
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	switch format {
	case "":
		format = "json"
	case "json", "csv":
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrBadRequest, req.Format)
	}

	return &TableQuery{
		Locale: s.ResolveLocale(req.Locale, r.Header.Get("Accept-Language")),
		Format: format,
	}, nil
}

// ResolveLocale picks the explicit locale, then the Accept-Language header,
// then the configured default.
func (s *RequestService) ResolveLocale(explicit, acceptLanguage string) *locale.Locale {
	for _, pref := range []string{explicit, acceptLanguage} {
		if pref == "" {
			continue
		}
		if l, ok := locale.Lookup(pref); ok {
			return l
		}
	}
	return locale.Match(s.defaultLocale)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(v string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(v))
	if err != nil {
		return civil.Date{}, fmt.Errorf("date %q: %w", v, expiry.ErrInvalidDate)
	}
	return d, nil
}
