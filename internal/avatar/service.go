// Package avatar stores profile images on the filesystem, one per account,
// keyed by the account's secure id.
package avatar

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/wssapp/account-service/pkg/utilities"
)

var (
	// ErrUnsupportedType rejects uploads outside the allowed extensions.
	ErrUnsupportedType = errors.New("unsupported image type")
	// ErrNotImage rejects uploads whose content cannot be decoded.
	ErrNotImage = errors.New("file is not a decodable image")
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// Store keeps at most one processed image per secure id under
// <dir>/<secure_id>.jpg. Reads for unknown ids fall back to the placeholder.
type Store struct {
	dir         string
	tmpDir      string
	placeholder string
	logger      *zap.SugaredLogger
}

// NewStore prepares the storage directories and makes sure the placeholder
// image exists.
func NewStore(uploadDir, placeholder string, logger *zap.SugaredLogger) (*Store, error) {
	s := &Store{
		dir:         filepath.Join(uploadDir, "profile"),
		tmpDir:      filepath.Join(uploadDir, "tmp"),
		placeholder: placeholder,
		logger:      logger,
	}
	for _, d := range []string{s.dir, s.tmpDir} {
		if err := os.MkdirAll(d, 0o770); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", d, err)
		}
	}
	if err := s.ensurePlaceholder(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensurePlaceholder writes a flat default image when none is shipped, so
// lookups for accounts without an upload always have something to serve.
func (s *Store) ensurePlaceholder() error {
	if _, err := os.Stat(s.placeholder); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.placeholder), 0o770); err != nil {
		return fmt.Errorf("mkdir placeholder dir: %w", err)
	}
	img := imaging.New(thumbSize, thumbSize, color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
	if err := imaging.Save(img, s.placeholder, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("write placeholder: %w", err)
	}
	s.logger.Infow("generated default profile image", "path", s.placeholder)
	return nil
}

// Path returns the canonical on-disk location for an account's image.
func (s *Store) Path(secureID string) string {
	return filepath.Join(s.dir, secureID+".jpg")
}

// Replace ingests an upload for the given secure id: validates the filename
// extension, normalizes the image and swaps it into place with an atomic
// rename so concurrent readers never observe a partial file. Last write
// wins; any previous image is replaced.
func (s *Store) Replace(secureID string, src io.Reader, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrUnsupportedType
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	img, err := normalize(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	tmp := filepath.Join(s.tmpDir, utilities.NewTempName()+".jpg")
	if err := imaging.Save(img, tmp, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("write temp image: %w", err)
	}

	if err := os.Rename(tmp, s.Path(secureID)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace image: %w", err)
	}
	return nil
}

// Get returns the stored image bytes for secureID, or the placeholder when
// no image has been uploaded.
func (s *Store) Get(secureID string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(secureID))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read image: %w", err)
	}
	data, err = os.ReadFile(s.placeholder)
	if err != nil {
		return nil, fmt.Errorf("read placeholder: %w", err)
	}
	return data, nil
}
