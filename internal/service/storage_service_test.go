package service

import (
	"context"
	"lexilearn_backend/internal/config"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageProviderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	content := `[{"word":"abandon","level":"A1"}]`
	url, err := provider.Upload(context.Background(), "corpus/test.json", strings.NewReader(content), int64(len(content)), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/corpus/test.json", url)

	data, err := os.ReadFile(filepath.Join(dir, "corpus", "test.json"))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, provider.Delete(context.Background(), "corpus/test.json"))
	_, err = os.Stat(filepath.Join(dir, "corpus", "test.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageProviderDeleteMissing(t *testing.T) {
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: t.TempDir()}}
	assert.Error(t, provider.Delete(context.Background(), "corpus/absent.json"))
}
