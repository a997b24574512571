// Package platform describes the boundary between duel17 and its host:
// the character-cell drawing and input capabilities the host supplies,
// and the input events it delivers once per frame.
package platform

// Platform is the capability surface supplied by the host.
//
// All coordinates are in character cells, origin at the top left.
type Platform interface {
	// PrintText writes text at a cell. A newline returns to column x on
	// the following row.
	PrintText(x, y int, text string)
	// Clear clears the whole surface when rect is nil, otherwise only
	// the cells inside rect.
	Clear(rect *Rect)
	// ViewportSize returns the surface size.
	ViewportSize() Size
	// PointerPosition returns the cell under the pointer.
	PointerPosition() Point
	// ButtonHeld returns true while key is held down.
	ButtonHeld(key KeyCode) bool
	// SetColors sets the colors of subsequent writes.
	SetColors(fg, bg Color)
}
