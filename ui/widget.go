package ui

// WidgetID identifies a logical widget across frames.
type WidgetID int

//go:generate go tool stringer -linecomment -type=WidgetID
const (
	WIDGET_NONE      = WidgetID(0) // none
	WIDGET_RUN       = WidgetID(1) // run
	WIDGET_BREAK     = WidgetID(2) // break
	WIDGET_RESET     = WidgetID(3) // reset
	WIDGET_CARD_DRAG = WidgetID(4) // card
)

// Look is how a widget should be drawn this frame.
type Look int

//go:generate go tool stringer -linecomment -type=Look
const (
	LOOK_NEUTRAL = Look(0) // neutral
	LOOK_HOVERED = Look(1) // hovered
	LOOK_PRESSED = Look(2) // pressed
)
