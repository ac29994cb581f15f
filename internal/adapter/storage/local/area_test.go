package local

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swapaudio/internal/domain"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestNewArea(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")

		area, err := NewArea(dir)
		require.NoError(t, err)

		info, err := os.Stat(area.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.True(t, filepath.IsAbs(area.Dir()))
	})

	t.Run("fails when path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "taken")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		area, err := NewArea(file)
		assert.Nil(t, area)

		var storageErr *domain.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "create", storageErr.Op)
	})
}

func TestArea_Stage(t *testing.T) {
	t.Run("writes content under role prefixed name", func(t *testing.T) {
		area, err := NewArea(t.TempDir())
		require.NoError(t, err)

		asset, err := area.Stage(domain.AssetRoleVideo, "holiday clip.MP4", strings.NewReader("video-bytes"))
		require.NoError(t, err)

		assert.Equal(t, domain.AssetRoleVideo, asset.Role)
		assert.Equal(t, "holiday clip.MP4", asset.OriginalName)
		assert.True(t, strings.HasPrefix(asset.Name, "video-"))
		assert.True(t, strings.HasSuffix(asset.Name, ".MP4"))
		assert.Equal(t, int64(len("video-bytes")), asset.Size)
		assert.Equal(t, area.Path(asset.Name), asset.Path)

		data, err := os.ReadFile(asset.Path)
		require.NoError(t, err)
		assert.Equal(t, "video-bytes", string(data))
	})

	t.Run("identical original names get distinct files", func(t *testing.T) {
		area, err := NewArea(t.TempDir())
		require.NoError(t, err)
		fixed := time.UnixMilli(1700000000000)
		area.now = func() time.Time { return fixed }

		first, err := area.Stage(domain.AssetRoleAudio, "track.mp3", strings.NewReader("one"))
		require.NoError(t, err)
		second, err := area.Stage(domain.AssetRoleAudio, "track.mp3", strings.NewReader("two"))
		require.NoError(t, err)

		assert.NotEqual(t, first.Name, second.Name)
		data, err := os.ReadFile(first.Path)
		require.NoError(t, err)
		assert.Equal(t, "one", string(data))
	})

	t.Run("removes partial file on copy failure", func(t *testing.T) {
		area, err := NewArea(t.TempDir())
		require.NoError(t, err)

		asset, err := area.Stage(domain.AssetRoleVideo, "clip.mp4", failingReader{})
		assert.Nil(t, asset)

		var storageErr *domain.StorageError
		require.ErrorAs(t, err, &storageErr)

		files, err := area.List()
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("unsafe extension is dropped", func(t *testing.T) {
		area, err := NewArea(t.TempDir())
		require.NoError(t, err)

		asset, err := area.Stage(domain.AssetRoleAudio, "../../etc/passwd.m$3", strings.NewReader("x"))
		require.NoError(t, err)

		assert.Equal(t, "", filepath.Ext(asset.Name))
		assert.Equal(t, area.Dir(), filepath.Dir(asset.Path))
	})
}

func TestArea_Reserve(t *testing.T) {
	area, err := NewArea(t.TempDir())
	require.NoError(t, err)

	name, path := area.Reserve(domain.PurposeProcessed, ".mp4")

	assert.True(t, strings.HasPrefix(name, "processed-"))
	assert.True(t, strings.HasSuffix(name, ".mp4"))
	assert.Equal(t, filepath.Join(area.Dir(), name), path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "reserve must not create the file")
}

func TestArea_Remove(t *testing.T) {
	area, err := NewArea(t.TempDir())
	require.NoError(t, err)

	asset, err := area.Stage(domain.AssetRoleVideo, "clip.mp4", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, area.Remove(asset.Name))
	_, err = os.Stat(asset.Path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, area.Remove(asset.Name), "removing a missing file is not an error")
	assert.ErrorIs(t, area.Remove("../outside"), domain.ErrNotFound)
}

func TestArea_List(t *testing.T) {
	area, err := NewArea(t.TempDir())
	require.NoError(t, err)

	_, err = area.Stage(domain.AssetRoleVideo, "a.mp4", strings.NewReader("aa"))
	require.NoError(t, err)
	_, err = area.Stage(domain.AssetRoleAudio, "b.mp3", strings.NewReader("bbb"))
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(area.Dir(), "subdir"), 0o755))

	files, err := area.List()
	require.NoError(t, err)
	require.Len(t, files, 2)

	var total int64
	for _, f := range files {
		total += f.Size
		assert.False(t, f.ModTime.IsZero())
	}
	assert.Equal(t, int64(5), total)
}
