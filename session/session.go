// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package session owns a duel17 game: the program memory being built,
// the hand of instruction cards, and the emulator running the program.
//
// A host calls Update once per frame with that frame's input events,
// then draws from Snapshot.
package session

import (
	"bytes"
	_ "embed"
	"io"
	"log"
	"math/rand"

	"github.com/ezrec/duel17/cpu"
	"github.com/ezrec/duel17/emulator"
	"github.com/ezrec/duel17/internal"
	"github.com/ezrec/duel17/platform"
	"github.com/ezrec/duel17/ui"
)

//go:embed default.asm
var defaultProgram []byte

// Config is the configuration of a new game.
type Config struct {
	Seed      int64     // Seed of the hand generator.
	Registers int       // Registers cards may name, from A.
	Program   io.Reader // Initial program listing. If nil, a default is used.
	Verbose   bool      // If set, logs session actions.
}

// DefaultConfig returns the default game configuration.
func DefaultConfig() Config {
	return Config{
		Seed:      1,
		Registers: cpu.REGISTER_VARIATION_COUNT,
	}
}

// Game is the state of a game session.
type Game struct {
	Verbose bool

	Memory       cpu.Memory // Program memory.
	ScrollOffset int        // Raw scroll offset; see ClampScrollOffset.
	Cards        []Card     // Hand of cards.
	Selected     int        // Index of the selected card, or -1.
	UI           ui.Context // Widget interaction state.
	Emulator     *emulator.Emulator
	Rng          *rand.Rand
	RunCount     int // Runs started since the last reset.

	Viewport platform.Size  // Last known viewport size.
	Pointer  platform.Point // Last known pointer position.
	Held     bool           // Pointer button held.

	registers int
	seed      cpu.Memory
}

// New creates a new game, idle, with a freshly dealt hand.
func New(cfg Config, viewport platform.Size) (game *Game, err error) {
	input := cfg.Program
	if input == nil {
		input = bytes.NewReader(defaultProgram)
	}

	asm := &cpu.Assembler{Verbose: cfg.Verbose}
	for key, value := range internal.Concat2(cpu.Defines(), emulator.Defines()) {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	seed, err := prog.Memory()
	if err != nil {
		return
	}

	game = &Game{
		Verbose:   cfg.Verbose,
		Rng:       rand.New(rand.NewSource(cfg.Seed)),
		Viewport:  viewport,
		registers: cfg.Registers,
		seed:      seed,
	}
	game.Emulator = emulator.NewEmulator(&game.Memory)
	game.Emulator.Verbose = cfg.Verbose

	game.Reset()

	return
}

// Reset restores the session to its starting program, with a zeroed
// register file and a new hand. The hand generator is not reseeded.
func (game *Game) Reset() {
	if game.Verbose {
		log.Printf("session: reset")
	}

	game.Memory = game.seed
	game.Emulator.Reset()
	game.ScrollOffset = 0
	game.Selected = -1
	game.UI = ui.Context{}
	game.RunCount = 0
	game.Cards = game.Deal()
}

// Run starts a run, if one is not already in progress.
func (game *Game) Run() {
	if game.Emulator.Running() {
		return
	}

	game.RunCount++
	if game.Verbose {
		log.Printf("session: run %d", game.RunCount)
	}
	game.Emulator.Run()
}

// Break stops the run in progress.
func (game *Game) Break() {
	game.Emulator.Break()
}
