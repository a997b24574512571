package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/duel17/platform"
)

func TestTapeFrames(t *testing.T) {
	assert := assert.New(t)

	script := `
; Drag a card.
resize 80 30
move 13 23
press MouseLeft
frame
frame
release mouseleft   ; case does not matter
press R ctrl
scroll -3
frame
close
`
	scr := NewScreen(platform.Size{Width: 10, Height: 10})
	tape := &Tape{Input: strings.NewReader(script), Screen: scr}

	var frames [][]platform.Event
	for events := range tape.Frames() {
		frames = append(frames, events)
	}
	assert.NoError(tape.Err())

	expected := [][]platform.Event{
		{
			platform.Resize(80, 30),
			platform.PointerMove(13, 23),
			platform.Press(platform.KEY_MOUSE_LEFT, false, false),
		},
		nil,
		{
			platform.Release(platform.KEY_MOUSE_LEFT, false, false),
			platform.Press(platform.KEY_R, true, false),
			platform.Scroll(-3),
		},
		{
			platform.Close(),
		},
	}
	assert.Equal(expected, frames)

	assert.Equal(platform.Size{Width: 80, Height: 30}, scr.ViewportSize())
	assert.Equal(platform.Point{X: 13, Y: 23}, scr.PointerPosition())
	assert.False(scr.ButtonHeld(platform.KEY_MOUSE_LEFT))
	assert.True(scr.ButtonHeld(platform.KEY_R))
}

func TestTapeStop(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("frame\nframe\nframe\n")}
	count := 0
	for range tape.Frames() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
	assert.NoError(tape.Err())
}

func TestTapeErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		script string
		lineno int
		err    error
	}{
		{"jump 1 2", 1, ErrTapeCommand},
		{"frame\nmove 1", 2, ErrTapeArgs},
		{"move 1 two", 1, ErrTapeNumber},
		{"scroll", 1, ErrTapeArgs},
		{"\n\npress Hyper", 3, ErrTapeKey},
		{"press A alt", 1, ErrTapeFlag},
		{"release", 1, ErrTapeArgs},
		{"close now", 1, ErrTapeArgs},
		{"frame 2", 1, ErrTapeCommand},
	}

	for _, entry := range table {
		tape := &Tape{Input: strings.NewReader(entry.script)}
		for range tape.Frames() {
		}
		err := tape.Err()
		assert.ErrorIs(err, entry.err, entry.script)

		var terr *ErrTape
		if assert.True(errors.As(err, &terr), entry.script) {
			assert.Equal(entry.lineno, terr.LineNo, entry.script)
		}
	}
}
