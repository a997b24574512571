package host

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/duel17/platform"
)

// Tape reads a scripted stream of input events, one per line:
//
//	; comment
//	move X Y
//	press KEY [ctrl] [shift]
//	release KEY [ctrl] [shift]
//	scroll DELTA
//	resize WIDTH HEIGHT
//	close
//	frame                 ; end of the events of a frame
//
// KEY is a platform.KeyCode name, such as MouseLeft or Enter.
type Tape struct {
	Input  io.Reader
	Screen *Screen // If set, tracks the pointer, size and held keys.

	err error
}

// Err returns the first error met while reading the tape.
func (tc *Tape) Err() error {
	return tc.err
}

// Frames returns an iterator over the event batches of each frame.
// A trailing batch without a closing frame line is also yielded.
// Iteration stops at the first error; see Err.
func (tc *Tape) Frames() iter.Seq[[]platform.Event] {
	return func(yield func(events []platform.Event) bool) {
		scanner := bufio.NewScanner(tc.Input)

		var events []platform.Event
		var lineno int
		for scanner.Scan() {
			lineno++
			text := scanner.Text()
			line := strings.TrimSpace(strings.Split(text, ";")[0])
			words := strings.Fields(line)
			if len(words) == 0 {
				continue
			}

			if words[0] == "frame" && len(words) == 1 {
				if !yield(events) {
					return
				}
				events = nil
				continue
			}

			ev, err := parseEvent(words)
			if err != nil {
				tc.err = &ErrTape{LineNo: lineno, Line: line, Err: err}
				return
			}
			if tc.Screen != nil {
				tc.Screen.Apply(ev)
			}
			events = append(events, ev)
		}

		tc.err = scanner.Err()
		if tc.err != nil {
			return
		}

		if len(events) != 0 {
			yield(events)
		}
	}
}

// parseInts parses a fixed count of integer arguments.
func parseInts(args []string, count int) (values []int, err error) {
	if len(args) != count {
		err = ErrTapeArgs
		return
	}

	values = make([]int, count)
	for n, arg := range args {
		values[n], err = strconv.Atoi(arg)
		if err != nil {
			err = ErrTapeNumber
			return
		}
	}

	return
}

// parseKey parses KEY [ctrl] [shift].
func parseKey(args []string) (key platform.KeyCode, ctrl, shift bool, err error) {
	if len(args) == 0 || len(args) > 3 {
		err = ErrTapeArgs
		return
	}

	key, ok := platform.ParseKeyCode(args[0])
	if !ok {
		err = ErrTapeKey
		return
	}

	for _, mod := range args[1:] {
		switch strings.ToLower(mod) {
		case "ctrl":
			ctrl = true
		case "shift":
			shift = true
		default:
			err = ErrTapeFlag
			return
		}
	}

	return
}

// parseEvent converts the words of a line into an event.
func parseEvent(words []string) (ev platform.Event, err error) {
	args := words[1:]

	switch words[0] {
	case "close":
		if len(args) != 0 {
			err = ErrTapeArgs
			return
		}
		ev = platform.Close()
	case "move":
		var v []int
		v, err = parseInts(args, 2)
		if err != nil {
			return
		}
		ev = platform.PointerMove(v[0], v[1])
	case "resize":
		var v []int
		v, err = parseInts(args, 2)
		if err != nil {
			return
		}
		ev = platform.Resize(v[0], v[1])
	case "scroll":
		var v []int
		v, err = parseInts(args, 1)
		if err != nil {
			return
		}
		ev = platform.Scroll(v[0])
	case "press", "release":
		var key platform.KeyCode
		var ctrl, shift bool
		key, ctrl, shift, err = parseKey(args)
		if err != nil {
			return
		}
		if words[0] == "press" {
			ev = platform.Press(key, ctrl, shift)
		} else {
			ev = platform.Release(key, ctrl, shift)
		}
	default:
		err = ErrTapeCommand
	}

	return
}
