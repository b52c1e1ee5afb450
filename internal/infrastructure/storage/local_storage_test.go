package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFileWritesUnderFolder(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)

	result, err := client.UploadFile(context.Background(), strings.NewReader("fake image bytes"), "cover.PNG", "games")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "/uploads/games/"))
	assert.True(t, strings.HasSuffix(result.URL, ".png"), "extension is lowercased")
	assert.Equal(t, int64(len("fake image bytes")), result.Size)

	data, err := os.ReadFile(filepath.Join(client.BaseDir(), "games", result.Filename))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestUploadFileSanitizesFolder(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)

	result, err := client.UploadFile(context.Background(), strings.NewReader("x"), "a.jpg", "../../etc")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/etc/", result.URL[:len("/uploads/etc/")])
	assert.NotContains(t, result.URL, "..")
}

func TestUploadFileDefaultFolder(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	require.NoError(t, err)

	result, err := client.UploadFile(context.Background(), strings.NewReader("x"), "a.jpg", "///")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "/uploads/images/"))
}
