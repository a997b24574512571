package cpu

import (
	"math/rand"
)

// RandomRegister draws a register uniformly from the first registers
// registers of the file. registers is clamped to [1, REGISTER_AMOUNT].
func RandomRegister(rng *rand.Rand, registers int) Register {
	registers = min(max(registers, 1), REGISTER_AMOUNT)

	return Register(rng.Intn(registers))
}

// RandomData draws an immediate operand uniformly over all byte values.
func RandomData(rng *rand.Rand) Data {
	return Immediate(uint8(rng.Intn(256)))
}

// RandomInstruction draws an operation uniformly, then draws its operands.
// See RandomRegister for the meaning of registers.
func RandomInstruction(rng *rand.Rand, registers int) (ins Instruction) {
	switch Op(rng.Intn(INSTRUCTION_VARIATION_COUNT)) {
	case OP_LOAD:
		ins = MakeLoad(RandomData(rng), RandomRegister(rng, registers))
	case OP_ADD:
		ins = MakeAdd(RandomData(rng), RandomRegister(rng, registers))
	case OP_SUB:
		ins = MakeSub(RandomData(rng), RandomRegister(rng, registers))
	case OP_JUMP_ZERO:
		ins = MakeJumpZero(RandomData(rng), RandomRegister(rng, registers))
	case OP_JUMP_NOT_ZERO:
		ins = MakeJumpNotZero(RandomData(rng), RandomRegister(rng, registers))
	case OP_JUMP_R_ZERO:
		ins = MakeJumpRZero(RandomRegister(rng, registers), RandomRegister(rng, registers))
	case OP_JUMP_R_NOT_ZERO:
		ins = MakeJumpRNotZero(RandomRegister(rng, registers), RandomRegister(rng, registers))
	default:
		ins = MakeNop()
	}

	return
}
