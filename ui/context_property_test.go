package ui

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ezrec/duel17/platform"
)

type step struct {
	X, Y     int
	Pressed  bool
	Released bool
}

var widgets = []struct {
	id     WidgetID
	bounds platform.Rect
}{
	{WIDGET_RUN, platform.Rect{X: 0, Y: 0, W: 4, H: 2}},
	{WIDGET_BREAK, platform.Rect{X: 4, Y: 0, W: 4, H: 2}},
	{WIDGET_RESET, platform.Rect{X: 0, Y: 2, W: 8, H: 2}},
}

func genSteps() gopter.Gen {
	return gen.SliceOf(gen.Struct(reflect.TypeOf(step{}), map[string]gopter.Gen{
		"X":        gen.IntRange(-1, 9),
		"Y":        gen.IntRange(-1, 5),
		"Pressed":  gen.Bool(),
		"Released": gen.Bool(),
	}))
}

func TestPropertyContext(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("active is none or a widget engaged while hot", prop.ForAll(
		func(steps []step) bool {
			ctx := &Context{}
			for _, st := range steps {
				ctx.FrameInit()
				wasActive := ctx.Active
				for _, w := range widgets {
					ctx.Button(w.id, w.bounds, platform.Point{X: st.X, Y: st.Y}, st.Pressed, st.Released)
				}
				if ctx.Active != wasActive && ctx.Active != WIDGET_NONE && ctx.Hot != ctx.Active {
					return false
				}
			}
			return true
		},
		genSteps(),
	))

	properties.Property("a click needs a release inside the active widget", prop.ForAll(
		func(steps []step) bool {
			ctx := &Context{}
			for _, st := range steps {
				ctx.FrameInit()
				pointer := platform.Point{X: st.X, Y: st.Y}
				for _, w := range widgets {
					active := ctx.Active == w.id
					if ctx.Button(w.id, w.bounds, pointer, st.Pressed, st.Released) {
						if !active || !st.Released || !w.bounds.Contains(pointer) {
							return false
						}
					}
				}
			}
			return true
		},
		genSteps(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
