package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"PLAYFIELD_SIZE":  fmt.Sprintf("%v", PLAYFIELD_SIZE),
	"REGISTER_AMOUNT": fmt.Sprintf("%v", REGISTER_AMOUNT),
}

// Defines for the cpu
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Execute executes the single instruction at address, updating the
// register file, and returns the address of the next instruction.
//
// Execute panics with ErrAddressRange if address is not inside program
// memory; callers are expected to only execute in-range addresses.
// The returned address is not range checked.
func Execute(mem *Memory, regs *Registers, address int) (next int) {
	if !InRange(address) {
		panic(&ErrAddress{Address: address})
	}

	ins := mem[address]
	next = address + 1

	switch ins.Op {
	case OP_NOP:
		// pass
	case OP_LOAD:
		regs[ins.Target] = ins.Data.Value
	case OP_ADD:
		regs[ins.Target] = ins.Data.Value + regs[ins.Target]
	case OP_SUB:
		// Data minus register, not the other way around.
		regs[ins.Target] = ins.Data.Value - regs[ins.Target]
	case OP_JUMP_ZERO:
		if regs[ins.Target] == 0 {
			next = int(ins.Data.Value)
		}
	case OP_JUMP_NOT_ZERO:
		if regs[ins.Target] != 0 {
			next = int(ins.Data.Value)
		}
	case OP_JUMP_R_ZERO:
		if regs[ins.Test] == 0 {
			next = int(regs[ins.Target])
		}
	case OP_JUMP_R_NOT_ZERO:
		if regs[ins.Test] != 0 {
			next = int(regs[ins.Target])
		}
	}

	return
}

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register Registers // Register bank.
	Ticks    int       // Instructions executed since reset.
}

// NewCpu creates a new CPU with a zeroed register file.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Ticks = 0
}

// Step executes the instruction at address, and returns the next address.
func (cpu *Cpu) Step(mem *Memory, address int) (next int) {
	next = Execute(mem, &cpu.Register, address)
	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("%02x: %-16v -> %02x", address, mem[address], next)
	}

	return
}

// String returns the current register file as a string.
func (cpu *Cpu) String() (text string) {
	for n, value := range cpu.Register {
		text += fmt.Sprintf("%v: 0x%02X\n", Register(n), value)
	}

	return
}
