package cpu

// Register is one of the eight symbolic registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // A
	REG_B = Register(1) // B
	REG_C = Register(2) // C
	REG_D = Register(3) // D
	REG_E = Register(4) // E
	REG_F = Register(5) // F
	REG_G = Register(6) // G
	REG_H = Register(7) // H
)

const (
	REGISTER_AMOUNT          = 8 // Number of registers in the register file.
	REGISTER_VARIATION_COUNT = 4 // Registers handed out by default when dealing cards.
)

// ToRegister converts a register index into a Register.
func ToRegister(n int) (reg Register, ok bool) {
	if n < 0 || n >= REGISTER_AMOUNT {
		return
	}

	return Register(n), true
}

// Registers is the register file, indexed by Register.
type Registers [REGISTER_AMOUNT]uint8
