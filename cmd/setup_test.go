package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/isometry/msg-app/internal/config"
	"github.com/isometry/msg-app/internal/helpers"
	"github.com/isometry/msg-app/internal/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	logger = helpers.NewNoopLogger()

	testCases := []struct {
		Name        string
		Backend     string
		Bucket      string
		ExpectError string
	}{
		{
			Name:    "memory",
			Backend: config.StoreMemory,
		},
		{
			Name:        "unsupported_backend",
			Backend:     "dynamodb",
			ExpectError: "unsupported store backend: dynamodb",
		},
		{
			Name:        "s3_without_bucket",
			Backend:     config.StoreS3,
			ExpectError: "requires a bucket name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			config.Store.Backend = tc.Backend
			config.Store.BucketName = tc.Bucket
			config.Store.BucketSSMKey = ""
			t.Cleanup(func() { config.Store.Backend = config.StoreMemory })

			store, err := newStore(context.Background())
			if tc.ExpectError != "" {
				assert.ErrorContains(t, err, tc.ExpectError)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &messages.MemoryStore{}, store)
		})
	}
}

func TestNewMessageHandler(t *testing.T) {
	logger = helpers.NewNoopLogger()
	config.Store.Backend = config.StoreMemory

	hdl, err := newMessageHandler(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, hdl)
}

func TestNew(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORE_BACKEND", config.StoreMemory)
	t.Setenv("SERVICE_IO_TIMEOUT", "2s")

	cmd := New()
	for _, name := range []string{"mode", "lambda-payload-type", "store-backend", "store-bucket", "service-io-timeout", "verbosity"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, config.StoreMemory, config.Store.Backend)
	assert.Equal(t, 2*time.Second, config.Service.Timeout)

	cmd.SetArgs([]string{"--mode", "bogus"})
	assert.ErrorContains(t, cmd.Execute(), "invalid mode: bogus")
}
