// Package messages creates and persists messages exchanged between two participants.
package messages

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isometry/msg-app/internal/helpers"
	"github.com/isometry/msg-app/internal/models"
	"github.com/pkg/errors"
)

// Creator creates a message on behalf of a sender.
type Creator interface {
	Create(ctx context.Context, senderID, recipientID, msgType, content string, attachment *models.Attachment, version string) (*models.Message, error)
}

// Store persists messages.
type Store interface {
	Put(ctx context.Context, msg *models.Message) error
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger instance for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used to stamp messages.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides the message ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// Service is the Store-backed Creator.
type Service struct {
	logger *slog.Logger
	store  Store
	now    func() time.Time
	newID  func() string
}

// NewService returns a Service persisting to store.
func NewService(store Store, opts ...Option) *Service {
	_inst := &Service{
		store:  store,
		logger: helpers.NewNoopLogger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(_inst)
	}
	return _inst
}

// Create stamps and stores a new message. Inputs are stored as given.
func (s *Service) Create(ctx context.Context, senderID, recipientID, msgType, content string, attachment *models.Attachment, version string) (*models.Message, error) {
	msg := &models.Message{
		ID:             s.newID(),
		ConversationID: ConversationID(senderID, recipientID),
		From:           senderID,
		To:             recipientID,
		Type:           msgType,
		Content:        content,
		Attachment:     attachment,
		Version:        version,
		CreatedAt:      s.now().UTC(),
	}

	logger := s.logger.With(slog.String("id", msg.ID), slog.String("conversation", msg.ConversationID))
	logger.Debug("storing message...")
	if err := s.store.Put(ctx, msg); err != nil {
		logger.Warn("failed to store message", slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to store message")
	}
	logger.Info("message stored")
	return msg, nil
}

// ConversationID returns the identifier shared by both directions of a conversation between a and b.
func ConversationID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "#")
}
