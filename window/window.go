// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package window hosts a game session in a desktop window.
package window

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/ezrec/duel17/host"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/render"
	"github.com/ezrec/duel17/session"
)

const (
	CELL_WIDTH  = 7  // Cell width, in pixels.
	CELL_HEIGHT = 13 // Cell height, in pixels.
)

var face = text.NewGoXFace(basicfont.Face7x13)

var keyMap = map[ebiten.Key]platform.KeyCode{
	ebiten.KeyA: platform.KEY_A, ebiten.KeyB: platform.KEY_B, ebiten.KeyC: platform.KEY_C,
	ebiten.KeyD: platform.KEY_D, ebiten.KeyE: platform.KEY_E, ebiten.KeyF: platform.KEY_F,
	ebiten.KeyG: platform.KEY_G, ebiten.KeyH: platform.KEY_H, ebiten.KeyI: platform.KEY_I,
	ebiten.KeyJ: platform.KEY_J, ebiten.KeyK: platform.KEY_K, ebiten.KeyL: platform.KEY_L,
	ebiten.KeyM: platform.KEY_M, ebiten.KeyN: platform.KEY_N, ebiten.KeyO: platform.KEY_O,
	ebiten.KeyP: platform.KEY_P, ebiten.KeyQ: platform.KEY_Q, ebiten.KeyR: platform.KEY_R,
	ebiten.KeyS: platform.KEY_S, ebiten.KeyT: platform.KEY_T, ebiten.KeyU: platform.KEY_U,
	ebiten.KeyV: platform.KEY_V, ebiten.KeyW: platform.KEY_W, ebiten.KeyX: platform.KEY_X,
	ebiten.KeyY: platform.KEY_Y, ebiten.KeyZ: platform.KEY_Z,

	ebiten.KeyF1: platform.KEY_F1, ebiten.KeyF2: platform.KEY_F2, ebiten.KeyF3: platform.KEY_F3,
	ebiten.KeyF4: platform.KEY_F4, ebiten.KeyF5: platform.KEY_F5, ebiten.KeyF6: platform.KEY_F6,
	ebiten.KeyF7: platform.KEY_F7, ebiten.KeyF8: platform.KEY_F8, ebiten.KeyF9: platform.KEY_F9,
	ebiten.KeyF10: platform.KEY_F10, ebiten.KeyF11: platform.KEY_F11, ebiten.KeyF12: platform.KEY_F12,

	ebiten.KeyEnter:      platform.KEY_ENTER,
	ebiten.KeyEscape:     platform.KEY_ESCAPE,
	ebiten.KeyBackspace:  platform.KEY_BACKSPACE,
	ebiten.KeyTab:        platform.KEY_TAB,
	ebiten.KeySpace:      platform.KEY_SPACE,
	ebiten.KeyPause:      platform.KEY_PAUSE,
	ebiten.KeyInsert:     platform.KEY_INSERT,
	ebiten.KeyHome:       platform.KEY_HOME,
	ebiten.KeyPageUp:     platform.KEY_PAGE_UP,
	ebiten.KeyDelete:     platform.KEY_DELETE,
	ebiten.KeyEnd:        platform.KEY_END,
	ebiten.KeyPageDown:   platform.KEY_PAGE_DOWN,
	ebiten.KeyArrowRight: platform.KEY_RIGHT,
	ebiten.KeyArrowLeft:  platform.KEY_LEFT,
	ebiten.KeyArrowDown:  platform.KEY_DOWN,
	ebiten.KeyArrowUp:    platform.KEY_UP,
}

var mouseMap = []struct {
	button ebiten.MouseButton
	key    platform.KeyCode
}{
	{ebiten.MouseButtonLeft, platform.KEY_MOUSE_LEFT},
	{ebiten.MouseButtonRight, platform.KEY_MOUSE_RIGHT},
	{ebiten.MouseButtonMiddle, platform.KEY_MOUSE_MIDDLE},
}

// The basic font has no box drawing glyphs.
var glyphMap = map[rune]rune{
	'─': '-', '│': '|',
	'┌': '+', '┐': '+', '└': '+', '┘': '+',
}

func glyph(r rune) rune {
	if g, ok := glyphMap[r]; ok {
		return g
	}
	return r
}

// Window is an ebiten.Game running a session. It is also the
// session's platform, drawing into a cell buffer that is blitted to the
// window each frame.
type Window struct {
	*host.Screen

	Game *session.Game

	cols, rows int
	pointer    platform.Point
	keys       []ebiten.Key
}

var _ ebiten.Game = (*Window)(nil)
var _ platform.Platform = (*Window)(nil)

// NewWindow creates a window of size cells, running game.
func NewWindow(game *session.Game, size platform.Size) (w *Window) {
	w = &Window{
		Screen: host.NewScreen(size),
		Game:   game,
		cols:   size.Width,
		rows:   size.Height,
	}

	return
}

// PointerPosition implements platform.Platform.
func (w *Window) PointerPosition() platform.Point {
	x, y := ebiten.CursorPosition()
	return platform.Point{}.Add(x/CELL_WIDTH, y/CELL_HEIGHT)
}

// ButtonHeld implements platform.Platform.
func (w *Window) ButtonHeld(key platform.KeyCode) bool {
	for _, m := range mouseMap {
		if m.key == key {
			return ebiten.IsMouseButtonPressed(m.button)
		}
	}
	for ek, code := range keyMap {
		if code == key {
			return ebiten.IsKeyPressed(ek)
		}
	}
	return false
}

// events collects the input since the last frame.
func (w *Window) events() (events []platform.Event) {
	if ebiten.IsWindowBeingClosed() {
		events = append(events, platform.Close())
	}

	size := platform.Size{Width: w.cols, Height: w.rows}
	if size != w.Screen.ViewportSize() {
		w.Screen.Resize(size)
		events = append(events, platform.Resize(size.Width, size.Height))
	}

	pt := w.PointerPosition()
	if pt != w.pointer {
		w.pointer = pt
		events = append(events, platform.PointerMove(pt.X, pt.Y))
	}

	// Wheel up is positive here, but scrolls towards lower addresses.
	if _, dy := ebiten.Wheel(); dy != 0 {
		if delta := -int(math.Round(dy)); delta != 0 {
			events = append(events, platform.Scroll(delta))
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, ek := range w.keys {
		if key, ok := keyMap[ek]; ok {
			events = append(events, platform.Press(key, ctrl, shift))
		}
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, ek := range w.keys {
		if key, ok := keyMap[ek]; ok {
			events = append(events, platform.Release(key, ctrl, shift))
		}
	}

	for _, m := range mouseMap {
		if inpututil.IsMouseButtonJustPressed(m.button) {
			events = append(events, platform.Press(m.key, ctrl, shift))
		}
		if inpututil.IsMouseButtonJustReleased(m.button) {
			events = append(events, platform.Release(m.key, ctrl, shift))
		}
	}

	return
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.Game.Update(w, w.events()) {
		return ebiten.Termination
	}

	render.Draw(w, w.Game.Snapshot())

	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(platform.COLOR_BLACK)

	size := w.Screen.ViewportSize()
	for y := range size.Height {
		for x := range size.Width {
			cell := w.Screen.At(x, y)
			px, py := x*CELL_WIDTH, y*CELL_HEIGHT

			if cell.Bg != platform.COLOR_BLACK {
				bg := screen.SubImage(image.Rect(px, py, px+CELL_WIDTH, py+CELL_HEIGHT)).(*ebiten.Image)
				bg.Fill(cell.Bg)
			}
			if cell.Rune == ' ' {
				continue
			}

			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(px), float64(py))
			op.ColorScale.ScaleWithColor(cell.Fg)
			text.Draw(screen, string(glyph(cell.Rune)), face, op)
		}
	}
}

// Layout implements ebiten.Game. The window is sized in whole cells.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.cols = max(outsideWidth/CELL_WIDTH, 1)
	w.rows = max(outsideHeight/CELL_HEIGHT, 1)

	return w.cols * CELL_WIDTH, w.rows * CELL_HEIGHT
}

// Run opens the window and runs until the player quits.
func (w *Window) Run() (err error) {
	ebiten.SetWindowSize(w.cols*CELL_WIDTH, w.rows*CELL_HEIGHT)
	ebiten.SetWindowTitle("duel17")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(w)
	if err == ebiten.Termination {
		err = nil
	}

	return
}
