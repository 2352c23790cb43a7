// service.go commits drafts and fetches monthly listings.
package transactions

import (
	"context"

	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/common"
	"spesebot.it/telegram-bot/internal/session"
)

// store is the persistence surface the service needs; satisfied by Repository.
type store interface {
	Insert(ctx context.Context, t *Transaction) error
	ListMonth(ctx context.Context, userID int64, month int) ([]*Transaction, error)
}

// usageCounter bumps category usage; satisfied by categories.Service.
type usageCounter interface {
	IncrementUsage(ctx context.Context, userID int64, name string) error
}

// Service owns the transaction business logic.
type Service struct {
	repo       store
	categories usageCounter
}

// NewService creates the transaction service.
func NewService(repo store, categories usageCounter) *Service {
	return &Service{repo: repo, categories: categories}
}

// Commit persists a finished draft as a transaction and bumps the usage
// counter of its category. The counter bump is best effort.
func (s *Service) Commit(ctx context.Context, userID int64, draft *session.Draft) error {
	t := &Transaction{
		Timestamp:   draft.Timestamp,
		Date:        draft.Date,
		UserID:      userID,
		Amount:      draft.Amount,
		Description: draft.Description,
		Category:    draft.Category,
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return err
	}

	if draft.Category != "" {
		if err := s.categories.IncrementUsage(ctx, userID, draft.Category); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id":  userID,
				"category": draft.Category,
			}).Warn("Bumping category usage failed")
		}
	}
	return nil
}

// ListMonth resolves a YYYY-MM month string and returns the matching
// transactions, newest first.
func (s *Service) ListMonth(ctx context.Context, userID int64, month string) ([]*Transaction, error) {
	num, err := common.MonthNumber(month)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMonth(ctx, userID, num)
}
