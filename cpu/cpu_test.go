package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		ins    Instruction
		before Registers
		after  Registers
		next   int
		at     int
	}){
		{"nop", MakeNop(), Registers{1, 2}, Registers{1, 2}, 6, 5},
		{"load", MakeLoad(Immediate(0x42), REG_C), Registers{}, Registers{2: 0x42}, 1, 0},
		{"load_overwrite", MakeLoad(Immediate(0), REG_A), Registers{0x11}, Registers{}, 31, 30},
		{"add", MakeAdd(Immediate(3), REG_B), Registers{1: 4}, Registers{1: 7}, 3, 2},
		{"add_wrap", MakeAdd(Immediate(10), REG_A), Registers{250}, Registers{4}, 1, 0},
		{"sub", MakeSub(Immediate(9), REG_H), Registers{7: 4}, Registers{7: 5}, 1, 0},
		{"sub_wrap", MakeSub(Immediate(3), REG_A), Registers{5}, Registers{254}, 1, 0},
		{"jz_taken", MakeJumpZero(Immediate(20), REG_D), Registers{}, Registers{}, 20, 4},
		{"jz_not_taken", MakeJumpZero(Immediate(20), REG_D), Registers{3: 1}, Registers{3: 1}, 5, 4},
		{"jnz_taken", MakeJumpNotZero(Immediate(2), REG_A), Registers{9}, Registers{9}, 2, 10},
		{"jnz_not_taken", MakeJumpNotZero(Immediate(2), REG_A), Registers{}, Registers{}, 11, 10},
		{"jnz_leaves", MakeJumpNotZero(Immediate(0xff), REG_A), Registers{9}, Registers{9}, 0xff, 10},
		{"jrz_taken", MakeJumpRZero(REG_A, REG_B), Registers{12}, Registers{12}, 12, 3},
		{"jrz_not_taken", MakeJumpRZero(REG_A, REG_B), Registers{12, 1}, Registers{12, 1}, 4, 3},
		{"jrnz_taken", MakeJumpRNotZero(REG_C, REG_C), Registers{2: 8}, Registers{2: 8}, 8, 0},
		{"jrnz_not_taken", MakeJumpRNotZero(REG_C, REG_D), Registers{2: 8}, Registers{2: 8}, 1, 0},
	}

	for _, entry := range table {
		mem := Memory{}
		mem[entry.at] = entry.ins
		regs := entry.before

		next := Execute(&mem, &regs, entry.at)
		assert.Equal(entry.next, next, entry.name)
		assert.Equal(entry.after, regs, entry.name)
	}
}

func TestExecuteRange(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{}
	regs := Registers{}

	for _, address := range []int{-1, PLAYFIELD_SIZE, PLAYFIELD_SIZE + 100} {
		func() {
			defer func() {
				r := recover()
				assert.NotNil(r, "address %d", address)
				err, ok := r.(error)
				assert.True(ok)
				assert.True(errors.Is(err, ErrAddressRange))
			}()
			Execute(&mem, &regs, address)
		}()
	}
}

func TestCpuStep(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	mem := Memory{}
	mem.Place(0, []Instruction{
		MakeLoad(Immediate(2), REG_A),
		MakeAdd(Immediate(3), REG_A),
		MakeSub(Immediate(1), REG_B),
	})

	ip := 0
	for range 3 {
		ip = cpu.Step(&mem, ip)
	}

	assert.Equal(3, ip)
	assert.Equal(3, cpu.Ticks)
	assert.Equal(uint8(5), cpu.Register[REG_A])
	assert.Equal(uint8(1), cpu.Register[REG_B])
	assert.Contains(cpu.String(), "A: 0x05\n")
	assert.Contains(cpu.String(), "H: 0x00\n")

	cpu.Reset()
	assert.Equal(Registers{}, cpu.Register)
	assert.Equal(0, cpu.Ticks)
}

func TestToRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range REGISTER_AMOUNT {
		reg, ok := ToRegister(n)
		assert.True(ok)
		assert.Equal(Register(n), reg)
	}

	_, ok := ToRegister(-1)
	assert.False(ok)
	_, ok = ToRegister(REGISTER_AMOUNT)
	assert.False(ok)
}
