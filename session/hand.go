package session

import (
	"log"
	"slices"

	"github.com/ezrec/duel17/cpu"
	"github.com/ezrec/duel17/platform"
)

// Card is a bundle of instructions waiting to be placed.
type Card struct {
	Location     platform.Point
	Instructions []cpu.Instruction
}

// Bounds returns the screen rectangle of the card at rest.
func (card *Card) Bounds() platform.Rect {
	return platform.Rect{X: card.Location.X, Y: card.Location.Y, W: CARD_WIDTH, H: CARD_HEIGHT}
}

// Deal draws a new hand of HAND_SIZE random cards, laid out for the
// current viewport.
func (game *Game) Deal() (cards []Card) {
	cards = make([]Card, HAND_SIZE)
	for n := range cards {
		length := game.Rng.Intn(CARD_LENGTH_MAX) + 1
		instructions := make([]cpu.Instruction, length)
		for i := range instructions {
			instructions[i] = cpu.RandomInstruction(game.Rng, game.registers)
		}
		cards[n] = Card{
			Location:     HandPosition(n, game.Viewport.Height),
			Instructions: instructions,
		}
	}

	return
}

// relayout packs the hand left to right at the current viewport height.
func (game *Game) relayout() {
	for n := range game.Cards {
		game.Cards[n].Location = HandPosition(n, game.Viewport.Height)
	}
}

// ClickedCard returns the index of the topmost card under pointer, or -1.
func (game *Game) ClickedCard(pointer platform.Point) int {
	// Cards are drawn in order, so the last one is on top.
	for n := len(game.Cards) - 1; n >= 0; n-- {
		if game.Cards[n].Bounds().Contains(pointer) {
			return n
		}
	}

	return -1
}

// AddressAt returns the program address a card dropped with the pointer
// at pointer would start at.
func (game *Game) AddressAt(pointer platform.Point) (address int, ok bool) {
	// The first instruction is drawn on the row below the anchor.
	row := DragAnchor(pointer).Y + 1
	address = row + ClampScrollOffset(game.Viewport.Height, game.ScrollOffset)

	return address, cpu.InRange(address)
}

// Place writes the index'th card into program memory at address, and
// removes it from the hand. The selection is cleared either way.
func (game *Game) Place(index int, address int) (ok bool) {
	game.Selected = -1

	if index < 0 || index >= len(game.Cards) {
		return
	}

	if !game.Memory.Place(address, game.Cards[index].Instructions) {
		if game.Verbose {
			log.Printf("session: card %d does not fit at %02x", index, address)
		}
		return
	}

	if game.Verbose {
		log.Printf("session: card %d placed at %02x", index, address)
	}

	game.Cards = slices.Delete(game.Cards, index, index+1)
	game.relayout()

	return true
}

// press handles a pointer press: select a card, or drop the selected one.
func (game *Game) press(pointer platform.Point) {
	if game.Selected < 0 {
		game.Selected = game.ClickedCard(pointer)
		return
	}

	address, ok := game.AddressAt(pointer)
	if !ok {
		game.Selected = -1
		return
	}

	game.Place(game.Selected, address)
}
