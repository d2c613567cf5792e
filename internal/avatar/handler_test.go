package avatar

import (
	"bytes"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("profile-file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestUploadEndpoint_Success(t *testing.T) {
	store := newTestStore(t)
	h := NewHandler(store, zap.NewNop().Sugar())

	body, contentType := multipartUpload(t, "me.png", pngBytes(t, 128, 128, color.NRGBA{G: 255, A: 255}))
	req := httptest.NewRequest(http.MethodPost, "/api/profile-upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "suid", Value: "abc123"})
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := store.Get("abc123")
	assert.NoError(t, err)
}

func TestUploadEndpoint_MissingCookie(t *testing.T) {
	h := NewHandler(newTestStore(t), zap.NewNop().Sugar())

	body, contentType := multipartUpload(t, "me.png", pngBytes(t, 32, 32, color.NRGBA{A: 255}))
	req := httptest.NewRequest(http.MethodPost, "/api/profile-upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadEndpoint_BadExtension(t *testing.T) {
	h := NewHandler(newTestStore(t), zap.NewNop().Sugar())

	body, contentType := multipartUpload(t, "me.bmp", pngBytes(t, 32, 32, color.NRGBA{A: 255}))
	req := httptest.NewRequest(http.MethodPost, "/api/profile-upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "suid", Value: "abc123"})
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadEndpoint_NoFile(t *testing.T) {
	h := NewHandler(newTestStore(t), zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodPost, "/api/profile-upload", nil)
	req.AddCookie(&http.Cookie{Name: "suid", Value: "abc123"})
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeEndpoint_FallsBackToPlaceholder(t *testing.T) {
	h := NewHandler(newTestStore(t), zap.NewNop().Sugar())

	req := httptest.NewRequest(http.MethodGet, "/api/profile-data/image/unknown", nil)
	req.SetPathValue("suid", "unknown")
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestServeEndpoint_StoredImage(t *testing.T) {
	store := newTestStore(t)
	h := NewHandler(store, zap.NewNop().Sugar())
	require.NoError(t, store.Replace("abc123", bytes.NewReader(pngBytes(t, 64, 64, color.NRGBA{R: 255, A: 255})), "a.png"))

	req := httptest.NewRequest(http.MethodGet, "/api/profile-data/image/abc123", nil)
	req.SetPathValue("suid", "abc123")
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := store.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, stored, rec.Body.Bytes())
}
