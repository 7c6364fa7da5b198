// Package storage persists uploaded media files on local disk.
//
// Files are stored flat under a configured directory with generated names,
// so nothing user-controlled ever becomes a path component. Only image and
// video content is accepted; the kind is detected from the bytes, not from
// the client-declared content type.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// Media kinds recognized by the upload endpoint.
const (
	KindImage = "image"
	KindVideo = "video"
)

// ErrUnsupportedMedia is returned when the uploaded bytes are neither an
// image nor a video.
var ErrUnsupportedMedia = errors.New("file must be an image or a video")

// ErrFileNotFound is returned when a requested upload does not exist or the
// name is not one this store could have generated.
var ErrFileNotFound = errors.New("file not found")

// StoredFile describes a persisted upload.
type StoredFile struct {
	// Name is the generated on-disk file name (id + original extension).
	Name string
	// Kind is "image" or "video".
	Kind string
	// Size is the number of bytes written.
	Size int64
}

// Store writes and serves uploads below Dir. MaxBytes caps a single file;
// zero means no cap beyond what the HTTP layer already enforces.
type Store struct {
	Dir      string
	MaxBytes int64
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir, MaxBytes: maxBytes}, nil
}

// Save persists one uploaded file under a generated name and returns its
// descriptor. The media kind is sniffed from the leading bytes;
// ErrUnsupportedMedia rejects everything that is not an image or video.
func (s *Store) Save(fh *multipart.FileHeader) (*StoredFile, error) {
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return nil, fmt.Errorf("file exceeds %d bytes", s.MaxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}
	kind, ok := mediaKind(mtype.String())
	if !ok {
		return nil, ErrUnsupportedMedia
	}
	// DetectReader consumed the sniffing prefix; rewind before copying.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	name := domain.NewUploadID() + extensionFor(fh.Filename, mtype.Extension())
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, err
	}
	written, err := io.Copy(dst, f)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filepath.Join(s.Dir, name))
		return nil, err
	}

	return &StoredFile{Name: name, Kind: kind, Size: written}, nil
}

// Path resolves a stored file name to its on-disk path. Names carrying path
// separators or traversal segments, and names of files that do not exist,
// yield ErrFileNotFound.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrFileNotFound
	}
	p := filepath.Join(s.Dir, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", ErrFileNotFound
	}
	return p, nil
}

// mediaKind maps a sniffed MIME type to a served media kind.
func mediaKind(mime string) (string, bool) {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage, true
	case strings.HasPrefix(mime, "video/"):
		return KindVideo, true
	}
	return "", false
}

// extensionFor prefers the extension of the uploaded filename and falls back
// to the one implied by the sniffed MIME type.
func extensionFor(filename, sniffed string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && len(ext) <= 8 {
		return ext
	}
	return sniffed
}
