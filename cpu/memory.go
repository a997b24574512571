package cpu

import (
	"iter"
)

// PLAYFIELD_SIZE is the number of instruction slots in program memory.
const PLAYFIELD_SIZE = 32

// Memory is the program memory. The zero value is all no-ops.
type Memory [PLAYFIELD_SIZE]Instruction

// InRange returns true if address is a valid program memory address.
func InRange(address int) bool {
	return address >= 0 && address < PLAYFIELD_SIZE
}

// Place writes instructions sequentially starting at address.
// If any of the instructions would land outside of memory, nothing is
// written and ok is false.
func (mem *Memory) Place(address int, instructions []Instruction) (ok bool) {
	if !InRange(address) || address+len(instructions) > PLAYFIELD_SIZE {
		return
	}

	copy(mem[address:], instructions)

	return true
}

// At returns the instruction at address, and false if address is out of range.
func (mem *Memory) At(address int) (ins Instruction, ok bool) {
	if !InRange(address) {
		return
	}

	return mem[address], true
}

// All returns an iterator over every address and its instruction.
func (mem *Memory) All() iter.Seq2[int, Instruction] {
	return func(yield func(address int, ins Instruction) bool) {
		for address, ins := range mem {
			if !yield(address, ins) {
				return
			}
		}
	}
}
