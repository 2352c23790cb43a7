package session

import "testing"

func TestManagerGetReturnsSameSession(t *testing.T) {
	m := NewManager()

	s1 := m.Get(100, 200)
	s2 := m.Get(100, 200)
	if s1 != s2 {
		t.Error("same chat returned different sessions")
	}
	if s1.ChatID != 100 || s1.UserID != 200 {
		t.Errorf("session ids = (%d, %d), want (100, 200)", s1.ChatID, s1.UserID)
	}
	if s1.State != StateIdle {
		t.Errorf("new session state = %q, want idle", s1.State)
	}

	other := m.Get(101, 200)
	if other == s1 {
		t.Error("different chats share a session")
	}
}

func TestClearDraftLeavesNoResidue(t *testing.T) {
	s := &Session{State: StateShow, Draft: &Draft{Amount: 12}}

	s.ClearDraft()

	if s.Draft != nil {
		t.Error("draft survived ClearDraft")
	}
	if s.State != StateIdle {
		t.Errorf("state = %q, want idle", s.State)
	}
}
