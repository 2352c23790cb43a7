// Package classifier guesses the category of a new transaction from the
// descriptions the user typed before. Pure read: it never writes anything.
package classifier

import (
	"context"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	log "github.com/sirupsen/logrus"
)

// matchThreshold is the similarity score (0-100) a prior description must
// exceed for its category to be suggested.
const matchThreshold = 90

// HistoryEntry is one prior description/category pair.
type HistoryEntry struct {
	Description string
	Category    string
}

// HistoryProvider yields a user's description history ordered newest first.
// Implemented by the transactions repository.
type HistoryProvider interface {
	DescriptionHistory(ctx context.Context, userID int64) ([]HistoryEntry, error)
}

// Service suggests categories from transaction history.
type Service struct {
	history HistoryProvider
}

// NewService creates the classifier.
func NewService(history HistoryProvider) *Service {
	return &Service{history: history}
}

// Suggest returns the category of the first distinct prior description, in
// recency order, whose similarity with the candidate exceeds the threshold.
// An empty string means no suggestion; the candidate is expected to be
// lowercased by the caller, stored descriptions are compared as written.
func (s *Service) Suggest(ctx context.Context, userID int64, description string) (string, error) {
	entries, err := s.history.DescriptionHistory(ctx, userID)
	if err != nil {
		return "", err
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Description == "" {
			continue
		}
		// Only the most recent occurrence of each description counts.
		if _, ok := seen[e.Description]; ok {
			continue
		}
		seen[e.Description] = struct{}{}

		score := fuzzy.Ratio(description, e.Description)
		log.WithFields(log.Fields{
			"candidate": description,
			"prior":     e.Description,
			"score":     score,
		}).Debug("Similarity computed")

		if score > matchThreshold {
			return e.Category, nil
		}
	}

	return "", nil
}
