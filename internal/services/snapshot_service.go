package services

import (
	"strings"

	"cloud.google.com/go/civil"
	log "github.com/sirupsen/logrus"

	"github.com/jwaldner/expiry/internal/calendar"
	"github.com/jwaldner/expiry/internal/contracts"
	"github.com/jwaldner/expiry/internal/expiry"
	"github.com/jwaldner/expiry/internal/locale"
	"github.com/jwaldner/expiry/internal/models"
)

// SnapshotService turns expiry snapshots and the contract table into their
// display models
type SnapshotService struct{}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService() *SnapshotService {
	return &SnapshotService{}
}

// Snapshot builds and formats the expiry snapshot for ref
func (s *SnapshotService) Snapshot(ref civil.Date, l *locale.Locale) (*models.FormattedSnapshot, error) {
	snap, err := expiry.Build(ref, l)
	if err != nil {
		return nil, err
	}

	upcoming, err := calendar.NextExpiration(ref)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"reference":       ref.String(),
		"current_expiry":  snap.CurrentExpiry.String(),
		"days_to_current": snap.DaysToCurrentExpiry,
		"days_to_next":    snap.DaysToNextExpiry,
	}).Debug("snapshot built")

	return &models.FormattedSnapshot{
		ReferenceDate:  formatDate(ref, l),
		Month:          formatText(int(snap.Month), snap.MonthName),
		CallLetter:     snap.Code.Call,
		PutLetter:      snap.Code.Put,
		Current:        expiryView(snap.CurrentExpiry, snap.DaysToCurrentExpiry, snap.CurrentStatus(), snap.IsCurrentExpiryToday, l),
		Next:           expiryView(snap.NextExpiry, snap.DaysToNextExpiry, snap.NextStatus(), snap.IsNextExpiryToday, l),
		NextExpiration: formatDate(upcoming, l),
	}, nil
}

// Table returns the twelve-month contract letter table
func (s *SnapshotService) Table(l *locale.Locale) []models.ContractRow {
	entries := contracts.FullTable(l)

	rows := make([]models.ContractRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.ContractRow{
			Month:     int(e.Month),
			MonthName: e.MonthName,
			Call:      e.Call,
			Put:       e.Put,
		})
	}
	return rows
}

// Letter resolves a contract letter to its month and side
func (s *SnapshotService) Letter(letter string, l *locale.Locale) (*models.LetterInfo, error) {
	month, side, err := contracts.MonthForLetter(letter)
	if err != nil {
		return nil, err
	}

	return &models.LetterInfo{
		Letter:     strings.ToUpper(strings.TrimSpace(letter)),
		Month:      int(month),
		MonthName:  l.MonthName(month),
		OptionType: string(side),
	}, nil
}

func expiryView(date civil.Date, days int, status expiry.Status, today bool, l *locale.Locale) models.ExpiryView {
	return models.ExpiryView{
		Date: formatDate(date, l),
		BusinessDays: models.FieldValue{
			Raw:     days,
			Display: l.Describe(status, days),
			Type:    "business_days",
		},
		Status:  status.String(),
		IsToday: today,
	}
}

func formatDate(d civil.Date, l *locale.Locale) models.FieldValue {
	return models.FieldValue{
		Raw:     d.String(),
		Display: l.FormatDate(d),
		Type:    "date",
	}
}

func formatText(raw interface{}, display string) models.FieldValue {
	return models.FieldValue{
		Raw:     raw,
		Display: display,
		Type:    "text",
	}
}
