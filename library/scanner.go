// Package library discovers game executables on disk and builds the
// catalog that the rest of the application consumes.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/classic-computing/gametiles/logger"
	"github.com/classic-computing/gametiles/storage"
)

// DefaultExtensions is the default allow-list of file extensions that
// mark a file as a launchable game entry.
var DefaultExtensions = []string{".exe", ".app", ".sh"}

// thumbnailExt is the sibling image extension probed for each game file.
const thumbnailExt = ".png"

// Scanner walks a root directory and builds a catalog of game entries.
type Scanner struct {
	root       string
	extensions []string
}

// NewScanner creates a scanner for the given root directory. A nil or
// empty extensions slice falls back to DefaultExtensions.
func NewScanner(root string, extensions []string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{
		root:       root,
		extensions: extensions,
	}
}

// Scan recursively enumerates files under the root and returns one
// record per file matching the extension allow-list, in walk order.
// Each record is paired with a same-named .png sibling when one exists.
//
// Scan fails only when the root itself is missing or not traversable.
// Unreadable subdirectories are skipped silently. The walk is read-only;
// persistence is a separate step.
func (s *Scanner) Scan() (*storage.Catalog, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("scan root %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s: not a directory", s.root)
	}

	catalog := storage.EmptyCatalog()

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			// Best-effort walk: an unreadable subdirectory is skipped,
			// not fatal.
			logger.Debug("skipping unreadable path", zap.String("path", path), zap.Error(err))
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !s.isGameExtension(ext) {
			return nil
		}

		catalog.Games = append(catalog.Games, storage.GameRecord{
			Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Path:      path,
			Thumbnail: probeThumbnail(path),
		})
		return nil
	}

	if err := filepath.Walk(s.root, walkFn); err != nil {
		return nil, fmt.Errorf("scan root %s: %w", s.root, err)
	}

	return catalog, nil
}

// isGameExtension checks a lowercased extension against the allow-list.
func (s *Scanner) isGameExtension(ext string) bool {
	for _, e := range s.extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// probeThumbnail returns the path of the sibling thumbnail for a game
// file, or "" when no sibling image exists.
func probeThumbnail(gamePath string) string {
	base := strings.TrimSuffix(filepath.Base(gamePath), filepath.Ext(gamePath))
	candidate := filepath.Join(filepath.Dir(gamePath), base+thumbnailExt)

	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate
	}
	return ""
}
