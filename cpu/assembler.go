// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for program memory listings.
//
// Each line holds at most one instruction, written the way
// Instruction.String renders it:
//
//	; comment
//	.equ NAME VALUE       ; define an equate
//	.org ADDRESS          ; continue assembly at ADDRESS
//	loop: sub 1 A         ; labels name the next instruction address
//	jnz loop A
//	load $(2*8) D         ; compile-time starlark expression
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to addresses.
	Equate    map[string]string // Map of equates.

	ip int // Address of the next instruction.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// dataOf returns a data operand from a word, wrapping negative values
// into their two's complement byte.
func (asm *Assembler) dataOf(word string) (data Data, err error) {
	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	if value < -0x80 || value > 0xff {
		err = ErrParseNumber(word)
		return
	}

	data = Immediate(uint8(value))
	return
}

// registerOf returns the register named by a word.
func (asm *Assembler) registerOf(word string) (reg Register, err error) {
	for n := range REGISTER_AMOUNT {
		if strings.EqualFold(Register(n).String(), word) {
			reg = Register(n)
			return
		}
	}

	err = ErrRegisterInvalid
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, ip := range asm.Label {
		pred[key] = starlark.MakeInt(ip)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses a single line into the words of an instruction.
// Directives and labels are consumed here.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .org ADDRESS
	if words[0] == ".org" {
		if len(words) != 2 {
			err = ErrOriginSyntax
			return
		}
		var ip int
		ip, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if ip < 0 || ip > PLAYFIELD_SIZE {
			err = &ErrAddress{Address: ip}
			return
		}
		asm.ip = ip
		words = words[:0]
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.ip
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.ip = 0
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		ip, ok := asm.Label[label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		op.Instruction.Data = Immediate(uint8(ip))
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// opMap maps lower case mnemonics to operations.
var opMap = map[string]Op{
	"nop":  OP_NOP,
	"load": OP_LOAD,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"jz":   OP_JUMP_ZERO,
	"jnz":  OP_JUMP_NOT_ZERO,
	"jrz":  OP_JUMP_R_ZERO,
	"jrnz": OP_JUMP_R_NOT_ZERO,
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if !InRange(asm.ip) {
		err = ErrProgramFull
		return
	}

	args := words[1:]
	want := 2
	if op == OP_NOP {
		want = 0
	}
	switch {
	case len(args) < want:
		err = ErrOpcodeValueMissing
		return
	case len(args) > want:
		err = ErrOpcodeExtraArgs
		return
	}

	var ins Instruction
	var label string

	switch op {
	case OP_NOP:
		ins = MakeNop()
	case OP_LOAD, OP_ADD, OP_SUB, OP_JUMP_ZERO, OP_JUMP_NOT_ZERO:
		var reg Register
		reg, err = asm.registerOf(args[1])
		if err != nil {
			return
		}
		var data Data
		data, err = asm.dataOf(args[0])
		if err != nil {
			if op != OP_JUMP_ZERO && op != OP_JUMP_NOT_ZERO {
				return
			}
			if _, nerr := asm.valueOf(args[0]); nerr == nil {
				// A number, just not a byte.
				return
			}
			// Jump targets may be labels, linked after the pass.
			err = nil
			label = args[0]
		}
		ins = Instruction{Op: op, Data: data, Target: reg}
	case OP_JUMP_R_ZERO, OP_JUMP_R_NOT_ZERO:
		var target, test Register
		target, err = asm.registerOf(args[0])
		if err != nil {
			return
		}
		test, err = asm.registerOf(args[1])
		if err != nil {
			return
		}
		ins = Instruction{Op: op, Target: target, Test: test}
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:      lineno,
		Ip:          asm.ip,
		Words:       words,
		Instruction: ins,
		LinkLabel:   label,
	})
	asm.ip++

	return
}
