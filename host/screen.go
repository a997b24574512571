// Package host supplies headless implementations of the platform: a
// character cell screen kept in memory, and a scripted event source.
package host

import (
	"io"
	"strings"

	"github.com/ezrec/duel17/platform"
)

// Cell is a single character cell.
type Cell struct {
	Rune rune
	Fg   platform.Color
	Bg   platform.Color
}

var blank = Cell{Rune: ' ', Fg: platform.COLOR_WHITE, Bg: platform.COLOR_BLACK}

// Screen is an in-memory character cell surface.
type Screen struct {
	Output io.Writer // If set, receives a dump of each flushed frame.

	size    platform.Size
	cells   []Cell
	fg, bg  platform.Color
	pointer platform.Point
	held    map[platform.KeyCode]bool
}

var _ platform.Platform = (*Screen)(nil)

// NewScreen creates a blank screen of size cells.
func NewScreen(size platform.Size) (scr *Screen) {
	scr = &Screen{
		fg:   platform.COLOR_WHITE,
		bg:   platform.COLOR_BLACK,
		held: map[platform.KeyCode]bool{},
	}
	scr.Resize(size)

	return
}

// Resize reallocates the screen, clearing it.
func (scr *Screen) Resize(size platform.Size) {
	scr.size = platform.Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	scr.cells = make([]Cell, scr.size.Width*scr.size.Height)
	scr.Clear(nil)
}

// MovePointer sets the position reported by PointerPosition.
func (scr *Screen) MovePointer(pt platform.Point) {
	scr.pointer = pt
}

// Hold sets whether key is reported as held.
func (scr *Screen) Hold(key platform.KeyCode, held bool) {
	scr.held[key] = held
}

// Apply tracks the pointer, size and held keys implied by an event.
func (scr *Screen) Apply(ev platform.Event) {
	switch ev.Kind {
	case platform.EVENT_RESIZE:
		scr.Resize(platform.Size{Width: ev.Width, Height: ev.Height})
	case platform.EVENT_POINTER_MOVE:
		scr.MovePointer(platform.Point{X: ev.X, Y: ev.Y})
	case platform.EVENT_PRESS:
		scr.Hold(ev.Key, true)
	case platform.EVENT_RELEASE:
		scr.Hold(ev.Key, false)
	}
}

func (scr *Screen) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < scr.size.Width && y < scr.size.Height
}

// At returns the cell at x, y. Cells off the screen are blank.
func (scr *Screen) At(x, y int) Cell {
	if !scr.inside(x, y) {
		return blank
	}

	return scr.cells[y*scr.size.Width+x]
}

// PrintText implements platform.Platform. Text off the screen is clipped.
func (scr *Screen) PrintText(x, y int, text string) {
	col := x
	for _, r := range text {
		if r == '\n' {
			col = x
			y++
			continue
		}
		if scr.inside(col, y) {
			scr.cells[y*scr.size.Width+col] = Cell{Rune: r, Fg: scr.fg, Bg: scr.bg}
		}
		col++
	}
}

// Clear implements platform.Platform.
func (scr *Screen) Clear(rect *platform.Rect) {
	area := platform.Rect{W: scr.size.Width, H: scr.size.Height}
	if rect != nil {
		area = *rect
	}

	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			if scr.inside(x, y) {
				scr.cells[y*scr.size.Width+x] = blank
			}
		}
	}
}

// ViewportSize implements platform.Platform.
func (scr *Screen) ViewportSize() platform.Size {
	return scr.size
}

// PointerPosition implements platform.Platform.
func (scr *Screen) PointerPosition() platform.Point {
	return scr.pointer
}

// ButtonHeld implements platform.Platform.
func (scr *Screen) ButtonHeld(key platform.KeyCode) bool {
	return scr.held[key]
}

// SetColors implements platform.Platform.
func (scr *Screen) SetColors(fg, bg platform.Color) {
	scr.fg = fg
	scr.bg = bg
}

// Row returns the text of row y, without trailing blanks.
func (scr *Screen) Row(y int) string {
	var sb strings.Builder
	for x := range scr.size.Width {
		sb.WriteRune(scr.At(x, y).Rune)
	}

	return strings.TrimRight(sb.String(), " ")
}

// String returns all rows, newline terminated.
func (scr *Screen) String() string {
	var sb strings.Builder
	for y := range scr.size.Height {
		sb.WriteString(scr.Row(y))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Flush writes the screen to Output, if set.
func (scr *Screen) Flush() (err error) {
	if scr.Output == nil {
		return
	}

	_, err = io.WriteString(scr.Output, scr.String())
	return
}

