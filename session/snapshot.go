package session

import (
	"slices"

	"github.com/ezrec/duel17/cpu"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/ui"
)

// Snapshot is a copy of everything needed to draw a frame.
type Snapshot struct {
	Memory       cpu.Memory
	ScrollOffset int // Clamped to the viewport.
	RawScroll    int
	Cards        []Card
	Selected     int
	UI           ui.Context
	Held         bool

	Address   int // Executing address.
	Countdown int // Frames until Address executes.
	Running   bool

	Register cpu.Registers
	Steps    int
	RunCount int

	Pointer  platform.Point
	Viewport platform.Size
}

// Snapshot copies the game state. Later updates do not affect it.
func (game *Game) Snapshot() (snap Snapshot) {
	snap = Snapshot{
		Memory:       game.Memory,
		ScrollOffset: ClampScrollOffset(game.Viewport.Height, game.ScrollOffset),
		RawScroll:    game.ScrollOffset,
		Cards:        make([]Card, len(game.Cards)),
		Selected:     game.Selected,
		UI:           game.UI,
		Held:         game.Held,
		Register:     game.Emulator.Register,
		Steps:        game.Emulator.Steps,
		RunCount:     game.RunCount,
		Pointer:      game.Pointer,
		Viewport:     game.Viewport,
	}
	snap.Address, snap.Countdown, snap.Running = game.Emulator.Cursor()

	for n, card := range game.Cards {
		snap.Cards[n] = Card{
			Location:     card.Location,
			Instructions: slices.Clone(card.Instructions),
		}
	}

	return
}

// SelectedCard returns the card being dragged, if any.
func (snap *Snapshot) SelectedCard() (card Card, ok bool) {
	if snap.Selected < 0 || snap.Selected >= len(snap.Cards) {
		return
	}

	return snap.Cards[snap.Selected], true
}
