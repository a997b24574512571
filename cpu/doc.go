// Package cpu implements the tiny register machine of duel17.
//
// The machine has eight 8-bit registers (A through H) and a fixed size
// program memory of PLAYFIELD_SIZE instructions. There is no flag
// register; arithmetic wraps modulo 256. Execution is a single pure step
// function, Execute, which reads the instruction at an address, updates
// the register file, and returns the next address.
//
// The assembler accepts the same text the instructions render to, plus
// labels, equates, origin directives, and compile-time $(...) expression
// evaluation, and is used to seed the program memory.
package cpu
