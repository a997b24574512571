package cpu

import (
	"fmt"
)

// DataKind is the kind of a data operand.
type DataKind int

//go:generate go tool stringer -linecomment -type=DataKind
const (
	DATA_IMMEDIATE = DataKind(0) // imm
)

// Data is a data operand of an instruction.
type Data struct {
	Kind  DataKind
	Value uint8
}

// Immediate creates an immediate data operand.
func Immediate(value uint8) Data {
	return Data{Kind: DATA_IMMEDIATE, Value: value}
}

// String renders the operand as two digit hexadecimal.
func (data Data) String() string {
	return fmt.Sprintf("0x%02X", data.Value)
}
