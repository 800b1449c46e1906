package core

// Point is a 2D pointer sample coordinate in region-local space
type Point struct {
	X, Y float64
}

// Size is the extent of a hit region as measured by the host
// Dimensions are expected non-negative; negative values contain nothing
type Size struct {
	Width, Height float64
}

// Area represents a rectangular cell region on screen
// Used by host adapters to place a hit region; the tracker itself
// only ever sees the region's Size
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}
