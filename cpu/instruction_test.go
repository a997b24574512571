package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  Instruction
		text string
	}){
		{MakeNop(), "NOP"},
		{MakeLoad(Immediate(2), REG_A), "load 0x02 A"},
		{MakeAdd(Immediate(0xab), REG_H), "add  0xAB H"},
		{MakeSub(Immediate(0), REG_C), "sub  0x00 C"},
		{MakeJumpZero(Immediate(0x1f), REG_B), "JZ   0x1F B"},
		{MakeJumpNotZero(Immediate(0x10), REG_D), "JNZ  0x10 D"},
		{MakeJumpRZero(REG_E, REG_F), "JRZ  E F"},
		{MakeJumpRNotZero(REG_G, REG_A), "JRNZ G A"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.ins.String())
	}
}

func TestInstructionEqual(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(MakeNop(), Instruction{})
	assert.True(MakeLoad(Immediate(1), REG_A) == MakeLoad(Immediate(1), REG_A))
	assert.False(MakeLoad(Immediate(1), REG_A) == MakeAdd(Immediate(1), REG_A))
	assert.False(MakeLoad(Immediate(1), REG_A) == MakeLoad(Immediate(2), REG_A))
	assert.False(MakeLoad(Immediate(1), REG_A) == MakeLoad(Immediate(1), REG_B))
	assert.False(MakeJumpRZero(REG_A, REG_B) == MakeJumpRZero(REG_B, REG_A))

	assert.True(MakeNop().IsNop())
	assert.False(MakeNop().IsJump())
	assert.True(MakeJumpRNotZero(REG_A, REG_B).IsJump())
	assert.False(MakeSub(Immediate(1), REG_A).IsJump())
}

func TestDataString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0x00", Immediate(0).String())
	assert.Equal("0x0A", Immediate(10).String())
	assert.Equal("0xFF", Immediate(255).String())
	assert.Equal("imm", DATA_IMMEDIATE.String())
	assert.Equal("Op(9)", Op(9).String())
}
