// Package locale renders expiry data for people: month names, date layout and
// the business-day phrases. The expiry core never depends on it.
package locale

import (
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jwaldner/expiry/internal/expiry"
)

const businessDaysKey = "%d business days"

// Locale is one display configuration.
type Locale struct {
	Tag            language.Tag
	Months         [12]string
	DateLayout     string
	ExpiryDayLabel string
	ExpiredLabel   string

	printer *message.Printer
}

var PortugueseBR = &Locale{
	Tag: language.BrazilianPortuguese,
	Months: [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	},
	DateLayout:     "02/01/2006",
	ExpiryDayLabel: "Dia do vencimento",
	ExpiredLabel:   "Opções Vencidas",
}

var EnglishUS = &Locale{
	Tag: language.AmericanEnglish,
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	DateLayout:     "01/02/2006",
	ExpiryDayLabel: "Expiry day",
	ExpiredLabel:   "Expired",
}

// Supported lists the built-in locales; the first one is the fallback.
var Supported = []*Locale{PortugueseBR, EnglishUS}

var matcher language.Matcher

func init() {
	// Singular only at exactly one; zero reads as plural in both languages.
	mustSet(language.BrazilianPortuguese, plural.Selectf(1, "%d",
		"=1", "%d dia útil",
		plural.Other, "%d dias úteis",
	))
	mustSet(language.AmericanEnglish, plural.Selectf(1, "%d",
		"=1", "%d business day",
		plural.Other, "%d business days",
	))

	tags := make([]language.Tag, 0, len(Supported))
	for _, l := range Supported {
		tags = append(tags, l.Tag)
		l.printer = message.NewPrinter(l.Tag)
	}
	matcher = language.NewMatcher(tags)
}

func mustSet(tag language.Tag, msg catalog.Message) {
	if err := message.Set(tag, businessDaysKey, msg); err != nil {
		panic(err)
	}
}

// Match picks the best built-in locale for the given language tags or
// Accept-Language values. Unknown or empty input falls back to pt-BR.
func Match(preferences ...string) *Locale {
	_, index := language.MatchStrings(matcher, preferences...)
	if index < 0 || index >= len(Supported) {
		return Supported[0]
	}
	return Supported[index]
}

// MonthName implements contracts.MonthNamer.
func (l *Locale) MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return month.String()
	}
	return l.Months[month-1]
}

// FormatDate formats d with the locale's date layout.
func (l *Locale) FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(l.DateLayout)
}

// BusinessDays renders a day count, singular only for exactly one.
func (l *Locale) BusinessDays(n int) string {
	return l.printer.Sprintf(businessDaysKey, n)
}

// Describe renders the human label for an expiry in the given status.
func (l *Locale) Describe(status expiry.Status, days int) string {
	switch status {
	case expiry.ExpiryDay:
		return l.ExpiryDayLabel
	case expiry.Expired:
		return l.ExpiredLabel
	default:
		return l.BusinessDays(days)
	}
}

func (l *Locale) String() string {
	return l.Tag.String()
}

// Lookup resolves a single tag or Accept-Language value. ok is false when
// nothing in it matches a built-in locale.
func Lookup(preference string) (l *Locale, ok bool) {
	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return Supported[0], false
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(Supported) {
		return Supported[0], false
	}
	return Supported[index], true
}
