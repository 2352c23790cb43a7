package transactions

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"spesebot.it/telegram-bot/internal/session"
)

type fakeAPI struct {
	sent []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.sent = append(f.sent, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type fakeStore struct {
	insertErr error
	inserted  []*Transaction
}

func (f *fakeStore) Insert(_ context.Context, t *Transaction) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, t)
	return nil
}

func (f *fakeStore) ListMonth(_ context.Context, _ int64, _ int) ([]*Transaction, error) {
	return nil, nil
}

type fakeCounter struct {
	bumped []string
}

func (f *fakeCounter) IncrementUsage(_ context.Context, _ int64, name string) error {
	f.bumped = append(f.bumped, name)
	return nil
}

func saveQuery() *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		Message: &tgbotapi.Message{
			MessageID: 5,
			Chat:      &tgbotapi.Chat{ID: 10},
		},
	}
}

func TestSaveReportsCommitFailure(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused")}
	counter := &fakeCounter{}
	h := NewHandler(NewService(store, counter), nil, nil, nil, &fakeAPI{})

	sess := &session.Session{
		UserID: 1,
		State:  session.StateShow,
		Draft:  &session.Draft{Amount: 12, Category: "🍔 Cibo", Date: time.Now()},
	}

	if h.Save(context.Background(), sess, saveQuery()) {
		t.Fatal("Save should report failure when the commit does not persist")
	}
	if len(counter.bumped) != 0 {
		t.Errorf("counter bumped despite failed insert: %v", counter.bumped)
	}
	// The caller keeps the draft on failure; Save itself must not touch it.
	if sess.Draft == nil {
		t.Error("draft cleared by a failed save")
	}
}

func TestSaveCommitsOnce(t *testing.T) {
	store := &fakeStore{}
	counter := &fakeCounter{}
	h := NewHandler(NewService(store, counter), nil, nil, nil, &fakeAPI{})

	sess := &session.Session{
		UserID: 1,
		State:  session.StateShow,
		Draft:  &session.Draft{Amount: 12, Category: "🍔 Cibo", Date: time.Now()},
	}

	if !h.Save(context.Background(), sess, saveQuery()) {
		t.Fatal("Save should report success")
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d rows, want 1", len(store.inserted))
	}
	if len(counter.bumped) != 1 || counter.bumped[0] != "🍔 Cibo" {
		t.Errorf("counter bumps = %v, want exactly the draft's category", counter.bumped)
	}
}

func TestSaveUncategorizedSkipsCounter(t *testing.T) {
	store := &fakeStore{}
	counter := &fakeCounter{}
	h := NewHandler(NewService(store, counter), nil, nil, nil, &fakeAPI{})

	sess := &session.Session{
		UserID: 1,
		State:  session.StateShow,
		Draft:  &session.Draft{Amount: 12, Date: time.Now()},
	}

	if !h.Save(context.Background(), sess, saveQuery()) {
		t.Fatal("Save should report success")
	}
	if len(counter.bumped) != 0 {
		t.Errorf("counter bumped for an uncategorized draft: %v", counter.bumped)
	}
}

func TestShowDraftEditsInPlace(t *testing.T) {
	sess := &session.Session{
		UserID: 1,
		Draft:  &session.Draft{Amount: 12, Date: time.Now()},
	}

	// With a message id the pressed message is edited, so its old buttons
	// cannot go stale.
	bot := &fakeAPI{}
	h := NewHandler(nil, nil, nil, nil, bot)
	h.ShowDraft(sess, 10, 5)

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d requests, want 1", len(bot.sent))
	}
	if _, ok := bot.sent[0].(tgbotapi.EditMessageTextConfig); !ok {
		t.Errorf("sent %T, want an edit of the pressed message", bot.sent[0])
	}

	// Without one (free-text replies) a fresh message goes out.
	bot = &fakeAPI{}
	h = NewHandler(nil, nil, nil, nil, bot)
	h.ShowDraft(sess, 10, 0)

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d requests, want 1", len(bot.sent))
	}
	if _, ok := bot.sent[0].(tgbotapi.MessageConfig); !ok {
		t.Errorf("sent %T, want a new message", bot.sent[0])
	}
}
