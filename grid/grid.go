// Package grid maps linear catalog indices to tile rectangles.
package grid

// Default grid dimensions for the library view.
const (
	Columns    = 5
	Rows       = 4
	TileWidth  = 120
	TileHeight = 100
	TileMargin = 10

	// GridTop is the vertical offset of the grid area, and ChromeHeight
	// the additional space consumed by the title bar and toolbar above it.
	GridTop      = 100
	ChromeHeight = 70
)

// Point is a screen position in pixels.
type Point struct {
	X int
	Y int
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Capacity returns the number of tiles a full default grid holds.
func Capacity() int {
	return Rows * Columns
}

// TileRect returns the screen rectangle for the tile at the given linear
// index. Rows fill left to right, top to bottom; the row advances every
// columns indices. Inputs are assumed valid: index is non-negative and
// columns is positive. Callers clamp index to the visible grid before
// querying.
func TileRect(index, columns, tileW, tileH, margin int, origin Point) Rect {
	row := index / columns
	col := index % columns

	return Rect{
		X: origin.X + col*(tileW+margin) + margin,
		Y: origin.Y + row*(tileH+margin) + margin,
		W: tileW,
		H: tileH,
	}
}

// DefaultTileRect returns the rectangle for a tile using the default
// grid constants, placed below the title bar and toolbar.
func DefaultTileRect(index int) Rect {
	return TileRect(index, Columns, TileWidth, TileHeight, TileMargin,
		Point{X: 0, Y: GridTop + ChromeHeight})
}
