// Package session keeps the per-chat conversation state: which step of the
// editing flow the user is in, the draft transaction being edited and the
// cached currency symbol.
//
// Telegram delivers at most one update per private chat at a time in
// practice, but nothing enforces that on our side of the long poll, so each
// session carries its own mutex and the bot holds it for the whole handling
// of an update. Sessions of different chats are fully independent.
package session

import "sync"

// State names one step of the conversation flow.
type State string

const (
	// StateIdle — no conversation in progress.
	StateIdle State = "idle"

	// StateShow — draft under review, editing keyboard visible.
	StateShow State = "show"

	// Field-editing states reached from the review keyboard.
	StateEditDescription State = "edit_description"
	StateEditCategory    State = "edit_category"
	StateEditDate        State = "edit_date"
	StateEditAmount      State = "edit_amount"

	// Category management dialogs.
	StateCategoryNewList State = "category_new_list"
	StateCategoryNew     State = "category_new"

	// Settings dialog.
	StateSetCurrency State = "set_currency"

	// Month pickers.
	StateTransactions State = "transactions"
	StateReports      State = "reports"
)

// Session is the conversation context of one chat.
// All fields are owned by whoever holds the session lock.
type Session struct {
	mu sync.Mutex

	ChatID int64
	UserID int64

	State State

	// Draft is the transaction being edited, nil when none is active.
	// It survives menu navigation on purpose: creating a category from the
	// category-edit keyboard comes back to the same draft.
	Draft *Draft

	// Currency is the display symbol, hydrated from the settings store at
	// every conversation entry point.
	Currency string
}

// Lock acquires exclusive ownership of the session for one update.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// ClearDraft drops the active draft and returns the session to idle.
func (s *Session) ClearDraft() {
	s.Draft = nil
	s.State = StateIdle
}

// Manager is the registry of sessions keyed by chat id.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager creates an empty session registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the session for a chat, creating it on first access.
// The returned session is NOT locked.
func (m *Manager) Get(chatID, userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[chatID]; ok {
		return s
	}
	s := &Session{
		ChatID: chatID,
		UserID: userID,
		State:  StateIdle,
	}
	m.sessions[chatID] = s
	return s
}
