// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator paces execution of a program memory, one instruction
// per countdown, frame by frame.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/duel17/cpu"
)

const (
	COUNTDOWN_LENGTH     = 30 // Frames between instructions.
	COUNTDOWN_NOP_LENGTH = 6  // Frames before a no-op executes.
)

var _emulator_defines = map[string]string{
	"COUNTDOWN_LENGTH":     fmt.Sprintf("%v", COUNTDOWN_LENGTH),
	"COUNTDOWN_NOP_LENGTH": fmt.Sprintf("%v", COUNTDOWN_NOP_LENGTH),
}

// Emulator state. CPU + program memory + execution cursor.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging.
	*cpu.Cpu             // Reference to the CPU simulation.
	Memory   *cpu.Memory // Reference to the program memory being run.

	Steps int // Instructions executed since the last reset.

	running   bool
	address   int
	countdown int
}

// NewEmulator creates a new, idle, emulator running mem.
func NewEmulator(mem *cpu.Memory) (emu *Emulator) {
	emu = &Emulator{
		Cpu:       cpu.NewCpu(),
		Memory:    mem,
		countdown: COUNTDOWN_LENGTH,
	}

	return
}

// Defines returns an iterator over all of the defines
func Defines() iter.Seq2[string, string] {
	return maps.All(_emulator_defines)
}

// Reset the emulator to idle, with a cleared register file.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Steps = 0
	emu.running = false
	emu.address = 0
	emu.countdown = COUNTDOWN_LENGTH
}

// Running returns true while a run is in progress.
func (emu *Emulator) Running() bool {
	return emu.running
}

// Cursor returns the executing address and the frames left before it
// executes. running is false when idle.
func (emu *Emulator) Cursor() (address int, countdown int, running bool) {
	return emu.address, emu.countdown, emu.running
}

// Run starts executing from address 0. Has no effect while running.
func (emu *Emulator) Run() {
	if emu.running {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: run")
	}

	emu.running = true
	emu.address = 0
	emu.countdown = COUNTDOWN_LENGTH
}

// Break stops any run in progress.
func (emu *Emulator) Break() {
	if emu.Verbose && emu.running {
		log.Printf("emulator: break at %02x", emu.address)
	}

	emu.running = false
	emu.countdown = COUNTDOWN_LENGTH
}

// Tick advances the emulator by one frame. done is true on the tick
// where a run ends by leaving program memory.
func (emu *Emulator) Tick() (done bool) {
	if !emu.running {
		return
	}

	if emu.countdown > 0 {
		emu.countdown--
	}
	if emu.countdown > 0 {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	next := emu.Cpu.Step(emu.Memory, emu.address)
	emu.Steps++

	if !cpu.InRange(next) {
		if emu.Verbose {
			log.Printf("emulator: stopped at %02x", next)
		}
		emu.running = false
		emu.countdown = COUNTDOWN_LENGTH
		done = true
		return
	}

	emu.address = next
	if emu.Memory[next].IsNop() {
		emu.countdown = COUNTDOWN_NOP_LENGTH
	} else {
		emu.countdown = COUNTDOWN_LENGTH
	}

	return
}
