package session

import (
	"math"

	"github.com/ezrec/duel17/cpu"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/ui"
)

const (
	CARD_WIDTH         = 16 // Card width, in cells.
	CARD_HEIGHT        = 12 // Card height, in cells.
	CARD_OFFSET        = 12 // Left edge of the first card in the hand.
	CARD_OFFSET_DELTA  = 12 // Distance between card left edges.
	HAND_HEIGHT_OFFSET = 8  // Hand top edge, up from the viewport bottom.
	HAND_SIZE          = 5  // Cards dealt per hand.
	CARD_LENGTH_MAX    = 3  // Longest card, in instructions.
)

const (
	REGISTER_PANEL_X = 28
	REGISTER_PANEL_Y = 4
)

var buttonBounds = map[ui.WidgetID]platform.Rect{
	ui.WIDGET_RUN:   {X: 28, Y: 0, W: 9, H: 3},
	ui.WIDGET_BREAK: {X: 38, Y: 0, W: 9, H: 3},
	ui.WIDGET_RESET: {X: 48, Y: 0, W: 9, H: 3},
}

// BUTTONS lists the clickable buttons, in drawing order.
var BUTTONS = []ui.WidgetID{ui.WIDGET_RUN, ui.WIDGET_BREAK, ui.WIDGET_RESET}

// ButtonBounds returns the screen rectangle of a button.
func ButtonBounds(id ui.WidgetID) platform.Rect {
	return buttonBounds[id]
}

// HandHeight returns the top edge of the hand for a viewport height.
func HandHeight(height int) int {
	return height - HAND_HEIGHT_OFFSET
}

// HandPosition returns where the index'th card of a hand rests.
func HandPosition(index int, height int) platform.Point {
	return platform.Point{X: CARD_OFFSET + index*CARD_OFFSET_DELTA, Y: HandHeight(height)}
}

// ClampScrollOffset confines a raw scroll offset so that at least one
// row of program memory stays on screen.
func ClampScrollOffset(height int, offset int) int {
	return min(max(offset, -height+1), cpu.PLAYFIELD_SIZE-1)
}

// DragAnchor returns where a selected card is drawn for a pointer.
func DragAnchor(pointer platform.Point) platform.Point {
	return pointer.Add(-CARD_WIDTH/2, 0)
}

// addSaturate adds, pinning at the int limits instead of wrapping.
func addSaturate(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
