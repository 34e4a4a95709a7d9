package cmd

import (
	"context"
	"fmt"

	"github.com/isometry/msg-app/internal/config"
	"github.com/isometry/msg-app/internal/controllers/aws"
	"github.com/isometry/msg-app/internal/handler"
	"github.com/isometry/msg-app/internal/messages"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func setupLogger(mode string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if logger == nil {
			logger = newLogger()
		}
		logger = logger.With("runtime", mode)
		return nil
	}
}

func newMessageHandler(ctx context.Context) (*handler.Handler, error) {
	logger.Debug("creating message store...", "backend", config.Store.Backend)
	store, err := newStore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create message store")
	}

	logger.Debug("creating message handler...")
	svc := messages.NewService(store,
		messages.WithLogger(logger.With("component", "messages")))
	return handler.NewMessageHandler(svc,
		handler.WithLogger(logger.With("component", "handler"))), nil
}

func newStore(ctx context.Context) (messages.Store, error) {
	switch config.Store.Backend {
	case config.StoreMemory:
		return messages.NewMemoryStore(), nil
	case config.StoreS3:
		if config.Store.BucketName == "" && config.Store.BucketSSMKey == "" {
			return nil, errors.New("s3 store requires a bucket name or a bucket SSM key")
		}
		awsCtl, err := aws.NewController(
			aws.WithLogger(logger.With("component", "aws-controller")),
			aws.WithContext(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create AWS controller")
		}
		bucket := config.Store.BucketName
		if config.Store.BucketSSMKey != "" {
			if bucket, err = awsCtl.GetSecret(ctx, config.Store.BucketSSMKey, true); err != nil {
				return nil, errors.Wrap(err, "failed to resolve message bucket")
			}
		}
		return messages.NewS3Store(awsCtl, bucket, config.Store.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", config.Store.Backend)
	}
}
