package storage

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/classic-computing/gametiles/logger"
)

// ErrMalformedCatalog reports a catalog file whose content does not
// describe a valid catalog: records missing required fields or
// duplicate executable paths.
var ErrMalformedCatalog = errors.New("malformed catalog")

// SaveCatalogTo writes the catalog to the given path atomically,
// replacing any existing content wholesale.
func SaveCatalogTo(path string, catalog *Catalog) error {
	// Keep the serialized form stable: an empty catalog is written as
	// {"games": []}, never null.
	if catalog.Games == nil {
		catalog.Games = []GameRecord{}
	}
	return AtomicWriteJSON(path, catalog)
}

// SaveCatalog writes the catalog to its fixed location. A failed save
// is non-fatal to the session; the in-memory catalog stays usable.
func SaveCatalog(catalog *Catalog) error {
	path, err := GetCatalogPath()
	if err != nil {
		return err
	}
	return SaveCatalogTo(path, catalog)
}

// LoadCatalogFrom reads and validates a catalog file. A missing file,
// unparseable content, or invalid records fail the load; callers that
// must keep running fall back to PlaceholderCatalog.
func LoadCatalogFrom(path string) (*Catalog, error) {
	catalog := &Catalog{}
	if err := ReadJSON(path, catalog); err != nil {
		return nil, err
	}

	if catalog.Games == nil {
		catalog.Games = []GameRecord{}
	}

	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

// LoadCatalog reads the catalog from its fixed location.
func LoadCatalog() (*Catalog, error) {
	path, err := GetCatalogPath()
	if err != nil {
		return nil, err
	}
	return LoadCatalogFrom(path)
}

// LoadCatalogOrPlaceholder loads the persisted catalog, substituting
// the placeholder catalog on any failure. It never returns an error;
// the failure is logged.
func LoadCatalogOrPlaceholder() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		logger.Warn("catalog load failed, using placeholder", zap.Error(err))
		return PlaceholderCatalog()
	}
	return catalog
}

// validateCatalog rejects records missing required fields and duplicate
// executable paths. Thumbnail is optional; "" means no thumbnail.
func validateCatalog(catalog *Catalog) error {
	seen := make(map[string]bool, len(catalog.Games))
	for i, g := range catalog.Games {
		if g.Name == "" {
			return fmt.Errorf("%w: record %d has no name", ErrMalformedCatalog, i)
		}
		if g.Path == "" {
			return fmt.Errorf("%w: record %d (%s) has no path", ErrMalformedCatalog, i, g.Name)
		}
		if seen[g.Path] {
			return fmt.Errorf("%w: duplicate path %s", ErrMalformedCatalog, g.Path)
		}
		seen[g.Path] = true
	}
	return nil
}
