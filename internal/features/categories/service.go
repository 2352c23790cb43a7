// service.go holds the category business logic: default provisioning,
// whole-list replacement with counter carry-over, usage bookkeeping.
package categories

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Service manages the per-user category sets.
type Service struct {
	repo *Repository
}

// NewService creates the category service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns a user's categories ordered by usage. A user with no
// categories gets the default set provisioned, all counters at zero.
func (s *Service) List(ctx context.Context, userID int64) ([]*Category, error) {
	cats, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	for _, name := range DefaultNames {
		if err := s.repo.Create(ctx, userID, name); err != nil {
			return nil, err
		}
	}
	log.WithField("user_id", userID).Info("Default categories provisioned")

	cats = make([]*Category, 0, len(DefaultNames))
	for _, name := range DefaultNames {
		cats = append(cats, &Category{UserID: userID, Name: name})
	}
	return cats, nil
}

// Create adds one new category with a zero counter.
func (s *Service) Create(ctx context.Context, userID int64, name string) error {
	return s.repo.Create(ctx, userID, strings.TrimSpace(name))
}

// ReplaceList swaps the whole category set from a newline-separated list.
// Names already present keep their usage counter; new names start at zero;
// names missing from the submitted list are dropped, counters included, even
// if historical transactions still reference them.
func (s *Service) ReplaceList(ctx context.Context, userID int64, raw string) ([]*Category, error) {
	names := splitNames(raw)
	if len(names) == 0 {
		return s.List(ctx, userID)
	}

	old, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := mergeCounts(old, names, userID)
	if err := s.repo.ReplaceAll(ctx, userID, merged); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"count":   len(merged),
	}).Info("Category list replaced")

	return s.repo.List(ctx, userID)
}

// IncrementUsage records one more committed transaction for a category.
func (s *Service) IncrementUsage(ctx context.Context, userID int64, name string) error {
	return s.repo.IncrementUsage(ctx, userID, name)
}

// Reconcile re-derives all usage counters from committed transactions.
func (s *Service) Reconcile(ctx context.Context) error {
	n, err := s.repo.ReconcileUsage(ctx)
	if err != nil {
		return err
	}
	log.WithField("rows", n).Info("Usage counters reconciled")
	return nil
}

// splitNames turns the submitted text into trimmed, non-empty, de-duplicated
// names in submission order.
func splitNames(raw string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// mergeCounts builds the replacement rows: carried counters for surviving
// names, zero for new ones.
func mergeCounts(old []*Category, names []string, userID int64) []*Category {
	counts := make(map[string]int, len(old))
	for _, c := range old {
		counts[c.Name] = c.TimesUsed
	}

	merged := make([]*Category, 0, len(names))
	for _, name := range names {
		merged = append(merged, &Category{
			UserID:    userID,
			Name:      name,
			TimesUsed: counts[name],
		})
	}
	return merged
}
