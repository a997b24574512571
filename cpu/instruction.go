package cpu

import (
	"fmt"
)

// Op is the operation of an instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP             = Op(0) // NOP
	OP_LOAD            = Op(1) // load
	OP_ADD             = Op(2) // add
	OP_SUB             = Op(3) // sub
	OP_JUMP_ZERO       = Op(4) // JZ
	OP_JUMP_NOT_ZERO   = Op(5) // JNZ
	OP_JUMP_R_ZERO     = Op(6) // JRZ
	OP_JUMP_R_NOT_ZERO = Op(7) // JRNZ
)

// INSTRUCTION_VARIATION_COUNT is the number of distinct operations.
const INSTRUCTION_VARIATION_COUNT = 8

// Instruction is a single decoded instruction.
//
// Only the operand fields implied by Op are set; the rest stay zero, so
// two instructions compare equal with == exactly when their operation
// and operands match. Build instructions with the Make* constructors.
type Instruction struct {
	Op     Op
	Data   Data     // Immediate operand of load/add/sub/JZ/JNZ.
	Target Register // Register written by load/add/sub, or holding the JRZ/JRNZ target.
	Test   Register // Register tested by JRZ/JRNZ.
}

// MakeNop creates a no-op.
func MakeNop() Instruction {
	return Instruction{}
}

// MakeLoad creates an instruction setting reg to data.
func MakeLoad(data Data, reg Register) Instruction {
	return Instruction{Op: OP_LOAD, Data: data, Target: reg}
}

// MakeAdd creates an instruction setting reg to data + reg.
func MakeAdd(data Data, reg Register) Instruction {
	return Instruction{Op: OP_ADD, Data: data, Target: reg}
}

// MakeSub creates an instruction setting reg to data - reg.
func MakeSub(data Data, reg Register) Instruction {
	return Instruction{Op: OP_SUB, Data: data, Target: reg}
}

// MakeJumpZero creates a jump to the data address when reg is zero.
func MakeJumpZero(data Data, reg Register) Instruction {
	return Instruction{Op: OP_JUMP_ZERO, Data: data, Target: reg}
}

// MakeJumpNotZero creates a jump to the data address when reg is not zero.
func MakeJumpNotZero(data Data, reg Register) Instruction {
	return Instruction{Op: OP_JUMP_NOT_ZERO, Data: data, Target: reg}
}

// MakeJumpRZero creates a jump to the address held in target when test is zero.
func MakeJumpRZero(target, test Register) Instruction {
	return Instruction{Op: OP_JUMP_R_ZERO, Target: target, Test: test}
}

// MakeJumpRNotZero creates a jump to the address held in target when test is not zero.
func MakeJumpRNotZero(target, test Register) Instruction {
	return Instruction{Op: OP_JUMP_R_NOT_ZERO, Target: target, Test: test}
}

// IsNop returns true for the no-op.
func (ins Instruction) IsNop() bool {
	return ins.Op == OP_NOP
}

// IsJump returns true for the jump family.
func (ins Instruction) IsJump() bool {
	switch ins.Op {
	case OP_JUMP_ZERO, OP_JUMP_NOT_ZERO, OP_JUMP_R_ZERO, OP_JUMP_R_NOT_ZERO:
		return true
	}

	return false
}

// String returns the listing text of the instruction, as accepted by the
// Assembler.
func (ins Instruction) String() (out string) {
	switch ins.Op {
	case OP_NOP:
		out = ins.Op.String()
	case OP_JUMP_R_ZERO, OP_JUMP_R_NOT_ZERO:
		out = fmt.Sprintf("%-4v %v %v", ins.Op, ins.Target, ins.Test)
	default:
		out = fmt.Sprintf("%-4v %v %v", ins.Op, ins.Data, ins.Target)
	}

	return
}
