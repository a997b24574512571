// Package ui implements immediate mode widget interaction.
//
// No widget objects are retained between frames. A Context only
// remembers which widget is hot (under the pointer, eligible for
// interaction) and which is active (engaged, e.g. the pointer button was
// pressed on it and is not yet released). Each frame the caller invokes
// FrameInit once, then Button once per widget it shows.
package ui

import (
	"github.com/ezrec/duel17/platform"
)

// Context is the interaction state carried from frame to frame.
type Context struct {
	Hot     WidgetID // Widget under the pointer last frame.
	Active  WidgetID // Widget currently engaged.
	NextHot WidgetID // Candidate for Hot in the next frame.

	resolved uint64 // Bit set of the widgets resolved this frame.
}

// FrameInit starts a new frame. Hot does not move while a widget is
// active.
func (ctx *Context) FrameInit() {
	if ctx.Active == WIDGET_NONE {
		ctx.Hot = ctx.NextHot
	}
	ctx.NextHot = WIDGET_NONE
	ctx.resolved = 0
}

func (ctx *Context) SetActive(id WidgetID) {
	ctx.Active = id
}

func (ctx *Context) SetNotActive() {
	ctx.Active = WIDGET_NONE
}

func (ctx *Context) SetNextHot(id WidgetID) {
	ctx.NextHot = id
}

func (ctx *Context) SetNotHot() {
	ctx.Hot = WIDGET_NONE
}

// Button resolves a clickable widget for this frame, and returns true
// when a click completes: the pointer button was pressed on the widget,
// and is released while still over it.
//
// Each widget may be resolved at most once per frame; Button panics
// with *ErrWidget otherwise.
func (ctx *Context) Button(id WidgetID, bounds platform.Rect, pointer platform.Point, pressed, released bool) (clicked bool) {
	if id <= WIDGET_NONE || id >= 64 || ctx.resolved&(1<<id) != 0 {
		panic(&ErrWidget{ID: id})
	}
	ctx.resolved |= 1 << id

	inside := bounds.Contains(pointer)

	if ctx.Active == id {
		if released {
			clicked = ctx.Hot == id && inside
			ctx.SetNotActive()
		}
	} else if ctx.Hot == id && pressed {
		ctx.SetActive(id)
	}

	if inside {
		ctx.SetNextHot(id)
	}

	return
}

// Look derives how widget id should appear this frame. held is whether
// the pointer button is currently down.
func (ctx *Context) Look(id WidgetID, held bool) Look {
	switch {
	case ctx.Active == id && held:
		return LOOK_PRESSED
	case ctx.Hot == id:
		return LOOK_HOVERED
	}

	return LOOK_NEUTRAL
}

// Force makes id both hot and active, so that no other widget can be
// engaged until Release.
func (ctx *Context) Force(id WidgetID) {
	ctx.Hot = id
	ctx.Active = id
}

// Release undoes a Force of id. Other widgets are not affected.
func (ctx *Context) Release(id WidgetID) {
	if ctx.Active == id {
		ctx.SetNotActive()
	}
	if ctx.Hot == id {
		ctx.SetNotHot()
	}
}
