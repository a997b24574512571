package session

import (
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/ui"
)

// Update advances the game by one frame, consuming the events received
// since the last frame in order. quit is true if the player asked to
// leave; the rest of the frame is then skipped.
func (game *Game) Update(p platform.Platform, events []platform.Event) (quit bool) {
	game.UI.FrameInit()

	game.Pointer = p.PointerPosition()
	game.Viewport = p.ViewportSize()
	game.Held = p.ButtonHeld(platform.KEY_MOUSE_LEFT)

	var pressed, released bool

	for _, ev := range events {
		switch ev.Kind {
		case platform.EVENT_CLOSE:
			return true
		case platform.EVENT_RESIZE:
			game.Viewport = platform.Size{Width: ev.Width, Height: ev.Height}
			game.relayout()
		case platform.EVENT_POINTER_MOVE:
			game.Pointer = platform.Point{X: ev.X, Y: ev.Y}
		case platform.EVENT_SCROLL:
			game.ScrollOffset = addSaturate(game.ScrollOffset, ev.Delta)
		case platform.EVENT_PRESS:
			if game.keyPress(ev) {
				return true
			}
			if ev.Key == platform.KEY_MOUSE_LEFT {
				pressed = true
			}
		case platform.EVENT_RELEASE:
			if ev.Key == platform.KEY_MOUSE_LEFT {
				released = true
			}
		}
	}

	// A selected card owns the pointer.
	if game.Selected >= 0 {
		game.UI.Force(ui.WIDGET_CARD_DRAG)
	} else {
		game.UI.Release(ui.WIDGET_CARD_DRAG)
	}

	for _, id := range BUTTONS {
		if !game.UI.Button(id, ButtonBounds(id), game.Pointer, pressed, released) {
			continue
		}
		switch id {
		case ui.WIDGET_RUN:
			game.Run()
		case ui.WIDGET_BREAK:
			game.Break()
		case ui.WIDGET_RESET:
			game.Reset()
		}
	}

	if len(game.Cards) == 0 {
		game.Cards = game.Deal()
	}

	game.Emulator.Tick()

	return
}

// keyPress handles a key or button press. quit is true for Escape.
func (game *Game) keyPress(ev platform.Event) (quit bool) {
	switch ev.Key {
	case platform.KEY_ESCAPE:
		return true
	case platform.KEY_MOUSE_LEFT:
		game.press(game.Pointer)
	case platform.KEY_MOUSE_RIGHT:
		game.Selected = -1
	case platform.KEY_UP:
		game.ScrollOffset = addSaturate(game.ScrollOffset, -1)
	case platform.KEY_DOWN:
		game.ScrollOffset = addSaturate(game.ScrollOffset, 1)
	case platform.KEY_PAGE_UP:
		game.ScrollOffset = addSaturate(game.ScrollOffset, -game.Viewport.Height)
	case platform.KEY_PAGE_DOWN:
		game.ScrollOffset = addSaturate(game.ScrollOffset, game.Viewport.Height)
	case platform.KEY_ENTER:
		game.Run()
	case platform.KEY_SPACE:
		game.Break()
	case platform.KEY_R:
		if ev.Ctrl {
			game.Reset()
		}
	}

	return
}
