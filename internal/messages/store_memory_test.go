package messages_test

import (
	"context"
	"testing"
	"time"

	"github.com/isometry/msg-app/internal/messages"
	"github.com/isometry/msg-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := messages.NewMemoryStore()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	msgs := []models.Message{
		{ID: "b", ConversationID: "u1#u2", CreatedAt: t0},
		{ID: "a", ConversationID: "u1#u2", CreatedAt: t0},
		{ID: "c", ConversationID: "u1#u2", CreatedAt: t0.Add(-time.Second), Attachment: &models.Attachment{Key: "k"}},
		{ID: "d", ConversationID: "u1#u3", CreatedAt: t0},
	}
	for i := range msgs {
		require.NoError(t, store.Put(ctx, &msgs[i]))
	}

	t.Run("duplicate_id", func(t *testing.T) {
		assert.ErrorIs(t, store.Put(ctx, &models.Message{ID: "a"}), messages.ErrAlreadyExists)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := store.Get(ctx, "z")
		assert.ErrorIs(t, err, messages.ErrNotFound)
	})

	t.Run("list_ordered", func(t *testing.T) {
		conv, err := store.ListConversation(ctx, "u1#u2")
		require.NoError(t, err)
		ids := make([]string, 0, len(conv))
		for _, m := range conv {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("clones_on_write", func(t *testing.T) {
		msgs[2].Attachment.Key = "mutated"
		got, err := store.Get(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, "k", got.Attachment.Key)
	})

	t.Run("clones_on_read", func(t *testing.T) {
		got, err := store.Get(ctx, "c")
		require.NoError(t, err)
		got.Attachment.Key = "mutated"
		again, err := store.Get(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, "k", again.Attachment.Key)
	})
}
