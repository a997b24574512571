package cpu

import (
	"iter"
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	LineNo      int
	Ip          int
	Words       []string
	Instruction Instruction
	LinkLabel   string
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode assembled at ip, if any.
func (prog *Program) Debug(ip int) (op *Opcode, ok bool) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Ip == ip {
			return &prog.Opcodes[n], true
		}
	}

	return
}

// Instructions returns an iterator over the assembled address and instruction pairs.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Instruction) {
				return
			}
		}
	}
}

// Memory lays the program out in a fresh program memory. Slots not
// named by the program are no-ops.
func (prog *Program) Memory() (mem Memory, err error) {
	for ip, ins := range prog.Instructions() {
		if !InRange(ip) {
			err = &ErrAddress{Address: ip}
			return
		}
		mem[ip] = ins
	}

	return
}
