package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/duel17/cpu"
	"github.com/ezrec/duel17/host"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/session"
	"github.com/ezrec/duel17/ui"
)

var size = platform.Size{Width: 80, Height: 30}

func setup(t *testing.T) (*session.Game, *host.Screen) {
	game, err := session.New(session.DefaultConfig(), size)
	assert.NoError(t, err)
	return game, host.NewScreen(size)
}

func TestSlot(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0x1F│NOP", Slot(31, cpu.MakeNop()))
	assert.Equal("0x02│load 0x02 A", Slot(2, cpu.MakeLoad(cpu.Immediate(2), cpu.REG_A)))
}

func TestDrawPlayfield(t *testing.T) {
	assert := assert.New(t)

	game, scr := setup(t)

	Draw(scr, game.Snapshot())
	assert.Equal("0x00│NOP", scr.Row(0)[:len("0x00│NOP")])
	assert.Equal("0x02│load 0x02 A", scr.Row(2)[:len("0x02│load 0x02 A")])
	assert.Equal(platform.COLOR_BLACK, scr.At(0, 0).Bg)

	game.ScrollOffset = -3
	Draw(scr, game.Snapshot())
	assert.Equal(' ', scr.At(0, 0).Rune)
	assert.Equal(RAIL_TOP, scr.Row(2)[:len(RAIL_TOP)])
	assert.Equal(' ', scr.At(len([]rune(RAIL_TOP)), 2).Rune)
	assert.Equal("0x00│NOP", scr.Row(3))

	game.ScrollOffset = 10
	Draw(scr, game.Snapshot())
	assert.Equal("0x0A│NOP", scr.Row(0)[:len("0x0A│NOP")])
	assert.Equal(RAIL_BOTTOM, scr.Row(22)[:len(RAIL_BOTTOM)])
	assert.Equal(' ', scr.At(0, 23).Rune)
}

func TestDrawRunning(t *testing.T) {
	assert := assert.New(t)

	game, scr := setup(t)
	game.Run()

	Draw(scr, game.Snapshot())
	assert.Equal(platform.COLOR_YELLOW, scr.At(0, 0).Bg)
	assert.Equal(platform.COLOR_YELLOW, scr.At(7, 0).Bg)
	assert.Equal(platform.COLOR_BLACK, scr.At(0, 1).Bg)

	game.Break()
	Draw(scr, game.Snapshot())
	assert.Equal(platform.COLOR_BLACK, scr.At(0, 0).Bg)
}

func TestDrawRegisters(t *testing.T) {
	assert := assert.New(t)

	game, scr := setup(t)
	game.Emulator.Register[cpu.REG_B] = 0x2A

	Draw(scr, game.Snapshot())
	x, y := session.REGISTER_PANEL_X, session.REGISTER_PANEL_Y
	assert.Equal('A', scr.At(x, y).Rune)
	assert.Contains(scr.Row(y), "A: 0x00")
	assert.Contains(scr.Row(y+1), "B: 0x2A")
	assert.Contains(scr.Row(y+7), "H: 0x00")
	assert.Contains(scr.Row(y+8), "runs:  0")
	assert.Contains(scr.Row(y+9), "steps: 0")
}

func TestDrawButtons(t *testing.T) {
	assert := assert.New(t)

	game, scr := setup(t)
	run := session.ButtonBounds(ui.WIDGET_RUN)

	Draw(scr, game.Snapshot())
	assert.Equal('┌', scr.At(run.X, run.Y).Rune)
	assert.Equal('┘', scr.At(run.X+run.W-1, run.Y+run.H-1).Rune)
	assert.Equal('r', scr.At(run.X+3, run.Y+1).Rune)
	assert.Equal(platform.COLOR_BLACK, scr.At(run.X+1, run.Y+1).Bg)

	// Hover.
	move := platform.PointerMove(run.X+1, run.Y+1)
	scr.Apply(move)
	game.Update(scr, []platform.Event{move})
	game.Update(scr, nil)
	Draw(scr, game.Snapshot())
	assert.Equal(platform.COLOR_GRAY, scr.At(run.X+1, run.Y+1).Bg)

	// Press.
	press := platform.Press(platform.KEY_MOUSE_LEFT, false, false)
	scr.Apply(press)
	game.Update(scr, []platform.Event{press})
	Draw(scr, game.Snapshot())
	assert.Equal(platform.COLOR_WHITE, scr.At(run.X+1, run.Y+1).Bg)
	assert.Equal(platform.COLOR_BLACK, scr.At(run.X+1, run.Y+1).Fg)
}

func TestDrawHand(t *testing.T) {
	assert := assert.New(t)

	game, scr := setup(t)
	card := game.Cards[0]

	Draw(scr, game.Snapshot())
	at := card.Location
	assert.Equal('┌', scr.At(at.X, at.Y).Rune)
	last := game.Cards[len(game.Cards)-1].Location
	assert.Equal('┐', scr.At(last.X+session.CARD_WIDTH-1, last.Y).Rune)
	assert.Equal('│', scr.At(at.X, at.Y+1).Rune)
	assert.Contains(scr.Row(at.Y+1), card.Instructions[0].String())

	// A selected card follows the pointer.
	game.Selected = 0
	game.Pointer = platform.Point{X: 50, Y: 12}
	Draw(scr, game.Snapshot())
	assert.Equal(' ', scr.At(at.X, at.Y).Rune)
	anchor := session.DragAnchor(game.Pointer)
	assert.Equal('┌', scr.At(anchor.X, anchor.Y).Rune)
	assert.Equal('└', scr.At(anchor.X, anchor.Y+session.CARD_HEIGHT-1).Rune)
	assert.Contains(scr.Row(anchor.Y+1), card.Instructions[0].String())
}
