package uploads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps uploads at 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrNotAnImage = errors.New("only image files are allowed")
	ErrTooLarge   = errors.New("file size must be less than 5MB")
)

// Service writes uploaded images to a local directory under generated
// names and hands back the URL path they are served from.
type Service struct {
	dir string
}

func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Service{dir: dir}, nil
}

// Store validates and persists the file, returning its public URL path.
// Nothing is written when validation fails. Names are fresh UUIDs, so
// concurrent uploads never contend on a path.
func (s *Service) Store(data []byte, contentType, originalFilename string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if len(data) > MaxFileSize {
		return "", ErrTooLarge
	}

	ext := "jpg"
	if i := strings.LastIndex(originalFilename, "."); i >= 0 {
		ext = originalFilename[i+1:]
	}

	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/" + name, nil
}

// Dir returns the storage directory, for mounting the static route.
func (s *Service) Dir() string {
	return s.dir
}
