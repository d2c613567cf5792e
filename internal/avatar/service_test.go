package avatar

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "uploads"), filepath.Join(dir, "data", "default-user.jpg"), zap.NewNop().Sugar())
	require.NoError(t, err)
	return store
}

func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, c), imaging.PNG))
	return buf.Bytes()
}

func TestNewStore_GeneratesPlaceholder(t *testing.T) {
	store := newTestStore(t)

	info, err := os.Stat(store.placeholder)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGet_UnknownIDReturnsPlaceholder(t *testing.T) {
	store := newTestStore(t)

	data, err := store.Get("ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	placeholder, err := os.ReadFile(store.placeholder)
	require.NoError(t, err)
	assert.Equal(t, placeholder, data)
}

func TestReplace_StoresNormalizedThumbnail(t *testing.T) {
	store := newTestStore(t)
	upload := pngBytes(t, 1024, 512, color.NRGBA{R: 200, A: 255})

	err := store.Replace("abc123", bytes.NewReader(upload), "holiday.png")
	require.NoError(t, err)

	img, err := imaging.Open(store.Path("abc123"))
	require.NoError(t, err)
	b := img.Bounds()
	assert.LessOrEqual(t, b.Dx(), 256)
	assert.LessOrEqual(t, b.Dy(), 256)

	// retrieval now serves the stored file, not the placeholder
	data, err := store.Get("abc123")
	require.NoError(t, err)
	placeholder, err := os.ReadFile(store.placeholder)
	require.NoError(t, err)
	assert.NotEqual(t, placeholder, data)
}

func TestReplace_RejectsBadExtension(t *testing.T) {
	store := newTestStore(t)
	upload := pngBytes(t, 64, 64, color.NRGBA{A: 255})

	err := store.Replace("abc123", bytes.NewReader(upload), "clip.gif")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, statErr := os.Stat(store.Path("abc123"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReplace_ExtensionCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	upload := pngBytes(t, 64, 64, color.NRGBA{A: 255})

	err := store.Replace("abc123", bytes.NewReader(upload), "PHOTO.JPEG")
	// content is PNG but named .JPEG; extension passes, decode still works
	require.NoError(t, err)
}

func TestReplace_RejectsNonImageContent(t *testing.T) {
	store := newTestStore(t)

	err := store.Replace("abc123", strings.NewReader("definitely not an image"), "fake.png")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestReplace_OverwritesPreviousImage(t *testing.T) {
	store := newTestStore(t)

	first := pngBytes(t, 300, 300, color.NRGBA{R: 255, A: 255})
	require.NoError(t, store.Replace("abc123", bytes.NewReader(first), "one.png"))
	before, err := store.Get("abc123")
	require.NoError(t, err)

	second := pngBytes(t, 400, 200, color.NRGBA{B: 255, A: 255})
	require.NoError(t, store.Replace("abc123", bytes.NewReader(second), "two.png"))
	after, err := store.Get("abc123")
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestReplace_LeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	upload := pngBytes(t, 64, 64, color.NRGBA{A: 255})

	require.NoError(t, store.Replace("abc123", bytes.NewReader(upload), "pic.png"))

	entries, err := os.ReadDir(store.tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
