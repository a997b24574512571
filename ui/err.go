package ui

import (
	"errors"

	"github.com/ezrec/duel17/translate"
)

var f = translate.From

var (
	ErrWidgetID = errors.New(f("widget id invalid or duplicated"))
)

// ErrWidget is raised, as a panic, when a widget is resolved twice in a
// frame or with an id that cannot be tracked.
type ErrWidget struct {
	ID WidgetID
}

func (err *ErrWidget) Error() string {
	return f("widget %v: %v", err.ID, ErrWidgetID)
}

func (err *ErrWidget) Unwrap() error {
	return ErrWidgetID
}
