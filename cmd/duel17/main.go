// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/duel17/host"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/render"
	"github.com/ezrec/duel17/session"
	"github.com/ezrec/duel17/window"
)

// options are the flags shared by every command.
type options struct {
	cfg     session.Config
	program string
	width   int
	height  int
	frames  bool
}

// open opens a named file, or stdin for "-".
func open(name string) (rc io.ReadCloser, err error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// newGame creates the session described by opt.
func (opt *options) newGame() (game *session.Game, err error) {
	cfg := opt.cfg
	if len(opt.program) != 0 {
		var inf io.ReadCloser
		inf, err = open(opt.program)
		if err != nil {
			return
		}
		defer inf.Close()
		cfg.Program = inf
	}

	game, err = session.New(cfg, platform.Size{Width: opt.width, Height: opt.height})
	if err != nil && len(opt.program) != 0 {
		err = fmt.Errorf("%v: %w", opt.program, err)
	}

	return
}

// replay runs the event script read from input against a headless
// screen, writing the final frame (or every frame) to output.
func (opt *options) replay(input io.Reader, output io.Writer) (err error) {
	game, err := opt.newGame()
	if err != nil {
		return
	}

	scr := host.NewScreen(game.Viewport)
	tape := &host.Tape{Input: input, Screen: scr}
	if opt.frames {
		scr.Output = output
	}

	for events := range tape.Frames() {
		quit := game.Update(scr, events)
		if quit {
			break
		}
		render.Draw(scr, game.Snapshot())
		err = scr.Flush()
		if err != nil {
			return
		}
	}

	err = tape.Err()
	if err != nil {
		return
	}

	if !opt.frames {
		_, err = io.WriteString(output, scr.String())
	}

	return
}

func newRootCommand() *cobra.Command {
	opt := &options{cfg: session.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:           "duel17",
		Short:         "Build programs from instruction cards, then run them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := opt.newGame()
			if err != nil {
				return err
			}
			return window.NewWindow(game, game.Viewport).Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&opt.cfg.Seed, "seed", opt.cfg.Seed, "Seed of the card generator")
	flags.IntVar(&opt.cfg.Registers, "registers", opt.cfg.Registers, "Registers cards may use (1-8)")
	flags.StringVarP(&opt.program, "program", "p", "", "Initial program listing")
	flags.IntVar(&opt.width, "width", 80, "Viewport width, in cells")
	flags.IntVar(&opt.height, "height", 40, "Viewport height, in cells")
	flags.BoolVarP(&opt.cfg.Verbose, "verbose", "v", false, "Verbose mode")

	replayCmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Run an event script without a window, and print the screen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) != 0 {
				name = args[0]
			}
			inf, err := open(name)
			if err != nil {
				return err
			}
			defer inf.Close()

			err = opt.replay(inf, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("%v: %w", name, err)
			}
			return nil
		},
	}
	replayCmd.Flags().BoolVar(&opt.frames, "frames", false, "Print every frame")

	rootCmd.AddCommand(replayCmd)

	return rootCmd
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
