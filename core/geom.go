package core

// Contains checks if point is within the half-open rectangle anchored
// at the origin with extent s: 0 <= x < width and 0 <= y < height
// Zero or negative dimensions contain nothing
func Contains(s Size, p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// AreaContains checks if a screen cell is within area
func AreaContains(a Area, x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}
