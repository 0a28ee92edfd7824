package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template images looked up by the registration form.
const (
	AssetEmblem    = "escudo.jpg"
	AssetIDCode    = "qrcode.jpg"
	AssetPrincipal = "rector.jpg"
)

// AssetStore resolves read-only template files under a base directory.
type AssetStore struct {
	baseDir string
}

// NewAssetStore returns a store rooted at baseDir. The directory may not exist:
// every lookup then reports the asset as absent.
func NewAssetStore(baseDir string) (*AssetStore, error) {
	if baseDir == "" {
		baseDir = "./images"
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets directory: %w", err)
	}
	return &AssetStore{baseDir: abs}, nil
}

// Lookup returns the absolute path of name and whether a regular file exists there.
func (s *AssetStore) Lookup(name string) (string, bool, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, false, nil
		}
		return path, false, fmt.Errorf("stat asset %s: %w", name, err)
	}
	if info.IsDir() {
		return path, false, nil
	}
	return path, true, nil
}

// Path exposes the base directory (useful for debugging).
func (s *AssetStore) Path() string {
	return s.baseDir
}

func (s *AssetStore) resolve(name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid asset name %q", name)
	}
	path := filepath.Join(s.baseDir, filepath.Clean(name))
	if path != s.baseDir && !strings.HasPrefix(path, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("asset %q escapes %s", name, s.baseDir)
	}
	return path, nil
}
