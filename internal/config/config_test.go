package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	Global = global{}
	Service = service{}
	Lambda = lambda{}
	Store = store{}
}

func TestSetDefaults(t *testing.T) {
	reset()
	require.NoError(t, SetDefaults())

	assert.Equal(t, ModeLambda, Global.Mode)
	assert.Equal(t, PayloadAPIGatewayV1, Lambda.PayloadType)
	assert.Equal(t, StoreMemory, Store.Backend)
	assert.Equal(t, "messages/", Store.Prefix)
	assert.Equal(t, "8080", Service.Port)
	assert.Equal(t, 5*time.Second, Service.Timeout)
	assert.Equal(t, "X-Principal-Id", Service.PrincipalHeader)
}

func TestLoadFromFile(t *testing.T) {
	testCases := []struct {
		Name        string
		Content     string
		Path        func(dir string) string
		ExpectError bool
		Check       func(t *testing.T)
	}{
		{
			Name: "empty_path",
			Path: func(string) string { return "" },
		},
		{
			Name: "missing_file",
			Path: func(dir string) string { return filepath.Join(dir, "absent.yaml") },
		},
		{
			Name:        "directory",
			Path:        func(dir string) string { return dir },
			ExpectError: true,
		},
		{
			Name:        "invalid_yaml",
			Content:     "store: [",
			ExpectError: true,
		},
		{
			Name: "overrides_with_defaults",
			Content: `
global:
  mode: service
service:
  port: "9090"
store:
  backend: s3
  bucketName: msgs
`,
			Check: func(t *testing.T) {
				assert.Equal(t, ModeService, Global.Mode)
				assert.Equal(t, "9090", Service.Port)
				assert.Equal(t, StoreS3, Store.Backend)
				assert.Equal(t, "msgs", Store.BucketName)
				assert.Equal(t, "messages/", Store.Prefix)
				assert.Equal(t, PayloadAPIGatewayV1, Lambda.PayloadType)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			reset()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if tc.Path != nil {
				path = tc.Path(dir)
			} else {
				require.NoError(t, os.WriteFile(path, []byte(tc.Content), 0o600))
			}

			err := LoadFromFile(path)
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, SetDefaults())
			if tc.Check != nil {
				tc.Check(t)
			}
		})
	}
}
