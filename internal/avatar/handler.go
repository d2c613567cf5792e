package avatar

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// maxUploadBytes caps in-memory buffering of multipart uploads.
const maxUploadBytes = 16 << 20

// Handler exposes the upload and retrieval endpoints for profile images.
type Handler struct {
	store  *Store
	logger *zap.SugaredLogger
}

func NewHandler(store *Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Upload ingests a multipart "profile-file" for the acting account. The
// acting secure id comes from the suid cookie set by the session layer. The
// response is a coarse status code only.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("suid")
	if err != nil || cookie.Value == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("profile-file")
	if err != nil {
		h.logger.Debugw("missing upload file", "err", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := h.store.Replace(cookie.Value, file, header.Filename); err != nil {
		if errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrNotImage) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.logger.Errorw("profile upload failed", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Serve writes the image for the secure id in the path, falling back to the
// placeholder for unknown ids.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	suid := r.PathValue("suid")
	if suid == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	data, err := h.store.Get(suid)
	if err != nil {
		h.logger.Errorw("image read failed", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	_, _ = w.Write(data)
}
