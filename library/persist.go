package library

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/classic-computing/gametiles/logger"
	"github.com/classic-computing/gametiles/storage"
)

// ScanAndPersist scans the root directory and saves the resulting
// catalog to its fixed location, replacing any previous catalog.
//
// A scan failure returns a nil catalog. A save failure still returns
// the scanned catalog alongside the error: the in-memory catalog
// remains usable for the current session.
func ScanAndPersist(root string, extensions []string) (*storage.Catalog, error) {
	catalog, err := NewScanner(root, extensions).Scan()
	if err != nil {
		return nil, err
	}

	logger.Info("scan complete",
		zap.String("root", root),
		zap.Int("games", catalog.Len()))

	if err := storage.SaveCatalog(catalog); err != nil {
		logger.Warn("catalog save failed", zap.Error(err))
		return catalog, fmt.Errorf("persist catalog: %w", err)
	}

	return catalog, nil
}
