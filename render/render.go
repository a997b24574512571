// Package render draws a session snapshot onto a platform.
package render

import (
	"fmt"
	"strings"

	"github.com/ezrec/duel17/cpu"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/session"
	"github.com/ezrec/duel17/ui"
)

const (
	RAIL_TOP    = "────┐"
	RAIL_BOTTOM = "────┘"
)

// Draw draws a complete frame.
func Draw(p platform.Platform, snap session.Snapshot) {
	p.SetColors(platform.COLOR_WHITE, platform.COLOR_BLACK)
	p.Clear(nil)

	drawPlayfield(p, &snap)
	drawButtons(p, &snap)
	drawRegisters(p, &snap)
	drawHand(p, &snap)
}

// Slot returns the playfield text of an address.
func Slot(address int, ins cpu.Instruction) string {
	return fmt.Sprintf("0x%02X│%v", address, ins)
}

func drawPlayfield(p platform.Platform, snap *session.Snapshot) {
	for y := range snap.Viewport.Height {
		address := y + snap.ScrollOffset
		switch {
		case cpu.InRange(address):
			text := Slot(address, snap.Memory[address])
			if snap.Running && address == snap.Address {
				p.SetColors(platform.COLOR_BLACK, platform.COLOR_YELLOW)
				p.PrintText(0, y, text)
				p.SetColors(platform.COLOR_WHITE, platform.COLOR_BLACK)
			} else {
				p.PrintText(0, y, text)
			}
		case address == -1:
			p.PrintText(0, y, RAIL_TOP)
		case address == cpu.PLAYFIELD_SIZE:
			p.PrintText(0, y, RAIL_BOTTOM)
		}
	}
}

var lookColors = map[ui.Look][2]platform.Color{
	ui.LOOK_NEUTRAL: {platform.COLOR_WHITE, platform.COLOR_BLACK},
	ui.LOOK_HOVERED: {platform.COLOR_BLACK, platform.COLOR_GRAY},
	ui.LOOK_PRESSED: {platform.COLOR_BLACK, platform.COLOR_WHITE},
}

func drawButtons(p platform.Platform, snap *session.Snapshot) {
	for _, id := range session.BUTTONS {
		bounds := session.ButtonBounds(id)
		colors := lookColors[snap.UI.Look(id, snap.Held)]

		p.SetColors(colors[0], colors[1])
		drawBox(p, bounds)

		label := id.String()
		x := bounds.X + max((bounds.W-len(label))/2, 1)
		p.PrintText(x, bounds.Y+bounds.H/2, label)
	}
	p.SetColors(platform.COLOR_WHITE, platform.COLOR_BLACK)
}

func drawRegisters(p platform.Platform, snap *session.Snapshot) {
	var sb strings.Builder
	for n, value := range snap.Register {
		fmt.Fprintf(&sb, "%v: 0x%02X\n", cpu.Register(n), value)
	}
	fmt.Fprintf(&sb, "runs:  %d\nsteps: %d", snap.RunCount, snap.Steps)

	p.PrintText(session.REGISTER_PANEL_X, session.REGISTER_PANEL_Y, sb.String())
}

func drawHand(p platform.Platform, snap *session.Snapshot) {
	for n := range snap.Cards {
		if n != snap.Selected {
			drawCard(p, snap.Cards[n].Location, &snap.Cards[n])
		}
	}

	// The dragged card is drawn last, above the rest.
	card, ok := snap.SelectedCard()
	if ok {
		drawCard(p, session.DragAnchor(snap.Pointer), &card)
	}
}

func drawCard(p platform.Platform, at platform.Point, card *session.Card) {
	drawBox(p, platform.Rect{X: at.X, Y: at.Y, W: session.CARD_WIDTH, H: session.CARD_HEIGHT})

	for n, ins := range card.Instructions {
		if n >= session.CARD_HEIGHT-2 {
			break
		}
		text := []rune(ins.String())
		text = text[:min(len(text), session.CARD_WIDTH-2)]
		p.PrintText(at.X+1, at.Y+1+n, string(text))
	}
}

// drawBox clears r and outlines it.
func drawBox(p platform.Platform, r platform.Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}

	p.Clear(&r)

	inner := r.W - 2
	p.PrintText(r.X, r.Y, "┌"+strings.Repeat("─", inner)+"┐")
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		p.PrintText(r.X, y, "│"+strings.Repeat(" ", inner)+"│")
	}
	p.PrintText(r.X, r.Y+r.H-1, "└"+strings.Repeat("─", inner)+"┘")
}
