// service.go resolves the effective currency symbol for a user.
package settings

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Service manages user preferences.
type Service struct {
	repo            *Repository
	defaultCurrency string
}

// NewService creates the settings service. defaultCurrency applies to users
// who never touched the settings.
func NewService(repo *Repository, defaultCurrency string) *Service {
	return &Service{repo: repo, defaultCurrency: defaultCurrency}
}

// Currency returns the symbol to show next to amounts: the stored one, the
// configured default when the user has no settings row, or empty when the
// user explicitly disabled it.
func (s *Service) Currency(ctx context.Context, userID int64) string {
	setting, err := s.repo.Get(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Reading currency failed, using default")
		return s.defaultCurrency
	}
	if setting == nil {
		return s.defaultCurrency
	}
	return setting.Currency()
}

// SetCurrency stores a new symbol. nil disables the symbol entirely.
func (s *Service) SetCurrency(ctx context.Context, userID int64, currency *string) error {
	return s.repo.UpsertCurrency(ctx, userID, currency)
}
