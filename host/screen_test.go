package host

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/duel17/platform"
)

func TestScreenPrint(t *testing.T) {
	assert := assert.New(t)

	scr := NewScreen(platform.Size{Width: 6, Height: 3})
	assert.Equal(platform.Size{Width: 6, Height: 3}, scr.ViewportSize())
	assert.Equal("\n\n\n", scr.String())

	scr.PrintText(1, 0, "ab\ncd")
	scr.PrintText(4, 2, "xyz")
	scr.PrintText(-1, 1, "┌─")
	assert.Equal(" ab\n─cd\n    xy\n", scr.String())
	assert.Equal('─', scr.At(0, 1).Rune)
	assert.Equal(' ', scr.At(10, 10).Rune)

	scr.SetColors(platform.COLOR_BLACK, platform.COLOR_YELLOW)
	scr.PrintText(0, 2, "!")
	cell := scr.At(0, 2)
	assert.Equal(platform.COLOR_YELLOW, cell.Bg)
	assert.Equal(platform.COLOR_BLACK, cell.Fg)
	assert.Equal(platform.COLOR_BLACK, scr.At(1, 0).Bg)
}

func TestScreenClear(t *testing.T) {
	assert := assert.New(t)

	scr := NewScreen(platform.Size{Width: 4, Height: 2})
	scr.PrintText(0, 0, "abcd\nefgh")

	scr.Clear(&platform.Rect{X: 1, Y: 0, W: 2, H: 5})
	assert.Equal("a  d\ne  h\n", scr.String())

	scr.Clear(nil)
	assert.Equal("\n\n", scr.String())
}

func TestScreenApply(t *testing.T) {
	assert := assert.New(t)

	scr := NewScreen(platform.Size{Width: 4, Height: 2})

	scr.Apply(platform.PointerMove(3, 1))
	assert.Equal(platform.Point{X: 3, Y: 1}, scr.PointerPosition())

	scr.Apply(platform.Press(platform.KEY_MOUSE_LEFT, false, false))
	assert.True(scr.ButtonHeld(platform.KEY_MOUSE_LEFT))
	assert.False(scr.ButtonHeld(platform.KEY_MOUSE_RIGHT))
	scr.Apply(platform.Release(platform.KEY_MOUSE_LEFT, false, false))
	assert.False(scr.ButtonHeld(platform.KEY_MOUSE_LEFT))

	scr.Apply(platform.Resize(8, 3))
	assert.Equal(platform.Size{Width: 8, Height: 3}, scr.ViewportSize())
	assert.Equal("\n\n\n", scr.String())
}

func TestScreenFlush(t *testing.T) {
	assert := assert.New(t)

	scr := NewScreen(platform.Size{Width: 3, Height: 1})
	assert.NoError(scr.Flush())

	var out bytes.Buffer
	scr.Output = &out
	scr.PrintText(0, 0, "ok")
	assert.NoError(scr.Flush())
	assert.Equal("ok\n", out.String())
}
