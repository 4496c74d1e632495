package storage

import (
	"fmt"

	"github.com/classic-computing/gametiles/grid"
)

// GameRecord is a single discovered game entry. Records are immutable
// once constructed by the scanner; the store serializes them verbatim.
type GameRecord struct {
	Name      string `json:"name"`      // Filename without extension
	Path      string `json:"path"`      // Path to the launchable file
	Thumbnail string `json:"thumbnail"` // Path to a thumbnail image, "" = none
}

// Catalog is an ordered sequence of game records in directory-walk
// discovery order. Executable paths are unique within a catalog; name
// collisions are permitted.
type Catalog struct {
	Games []GameRecord `json:"games"`
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.Games)
}

// EmptyCatalog returns a new catalog with no records.
func EmptyCatalog() *Catalog {
	return &Catalog{Games: []GameRecord{}}
}

// PlaceholderCatalog returns the deterministic fallback catalog shown
// when no persisted catalog can be loaded: one full grid of sample
// entries with no executables or thumbnails.
func PlaceholderCatalog() *Catalog {
	n := grid.Capacity()
	games := make([]GameRecord, n)
	for i := range games {
		games[i] = GameRecord{Name: fmt.Sprintf("Game %d", i+1)}
	}
	return &Catalog{Games: games}
}
