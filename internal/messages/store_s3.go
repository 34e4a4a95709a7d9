package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/isometry/msg-app/internal/models"
	"github.com/pkg/errors"
)

// ObjectPutter uploads objects to a bucket.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucket, key, contentType string, body []byte) error
}

// S3Store writes each message as a JSON object keyed by conversation.
type S3Store struct {
	putter ObjectPutter
	bucket string
	prefix string
}

// NewS3Store returns a Store writing to bucket under prefix.
func NewS3Store(putter ObjectPutter, bucket, prefix string) *S3Store {
	return &S3Store{putter: putter, bucket: bucket, prefix: prefix}
}

func (s *S3Store) Put(ctx context.Context, msg *models.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}
	return s.putter.PutObject(ctx, s.bucket, s.Key(msg), "application/json", body)
}

// Key returns the object key for msg.
func (s *S3Store) Key(msg *models.Message) string {
	return fmt.Sprintf("%s%s/%s.%s.json", s.prefix, msg.ConversationID, msg.CreatedAt.UTC().Format(time.RFC3339Nano), msg.ID)
}
