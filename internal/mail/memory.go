package mail

import (
	"context"
	"sync"
)

// MemorySender records drafts in memory. Used by tests and dry runs.
type MemorySender struct {
	mu     sync.Mutex
	drafts []Draft

	// Err, when set, is returned by CreateDraft. Lets tests exercise
	// the partial-success path.
	Err error
}

// Draft is a recorded CreateDraft call.
type Draft struct {
	Subject string
	Body    string
}

var _ DraftSender = (*MemorySender)(nil)

func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) CreateDraft(_ context.Context, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.drafts = append(s.drafts, Draft{Subject: subject, Body: body})
	return nil
}

// Drafts returns a copy of the recorded drafts.
func (s *MemorySender) Drafts() []Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Draft(nil), s.drafts...)
}
