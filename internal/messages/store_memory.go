package messages

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/isometry/msg-app/internal/models"
)

// ErrNotFound is returned when a message does not exist.
var ErrNotFound = errors.New("message not found")

// ErrAlreadyExists is returned when a message ID is reused.
var ErrAlreadyExists = errors.New("message already exists")

// MemoryStore is an in-memory Store. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]models.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]models.Message),
	}
}

func (s *MemoryStore) Put(_ context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[msg.ID]; ok {
		return ErrAlreadyExists
	}
	s.byID[msg.ID] = cloneMessage(*msg)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneMessage(m)
	return &out, nil
}

// ListConversation returns the messages of a conversation, oldest first.
func (s *MemoryStore) ListConversation(_ context.Context, conversationID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.byID {
		if m.ConversationID == conversationID {
			out = append(out, cloneMessage(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneMessage(m models.Message) models.Message {
	if m.Attachment != nil {
		a := *m.Attachment
		m.Attachment = &a
	}
	return m
}
