package insts

// Op represents a MIPS32 mnemonic recognized by the decoder/executor pair.
type Op uint8

// MIPS32 opcodes/functs this core implements.
const (
	OpUnknown Op = iota

	// R-type (funct-dispatched)
	OpADD
	OpADDU
	OpSUB
	OpSUBU
	OpAND
	OpOR
	OpXOR
	OpNOR
	OpSLL
	OpSRL
	OpSRA
	OpSLLV
	OpSRLV
	OpSRAV
	OpMULT
	OpMULTU
	OpDIV
	OpDIVU
	OpMFHI
	OpMFLO
	OpJR
	OpJALR

	// J-type
	OpJ
	OpJAL

	// I-type
	OpADDI
	OpADDIU
	OpANDI
	OpORI
	OpXORI
	OpSLTI
	OpSLTIU
	OpBEQ
	OpBNE
	OpBLEZ
	OpBGTZ
	OpLB
	OpLW
	OpSW
	OpSH
	OpSB
)

// Format represents which of the three MIPS32 instruction encodings a word
// belongs to.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR
	FormatJ
	FormatI
)

// Instruction represents a decoded MIPS32 instruction.
type Instruction struct {
	Op     Op
	Format Format

	// R-type fields
	Rs    uint8
	Rt    uint8
	Rd    uint8
	Shamt uint8
	Funct uint8

	// J-type field
	Target uint32

	// I-type fields (Rs, Rt shared with R-type above)
	Imm  int32  // sign-extended 16-bit immediate
	Zimm uint32 // zero-extended 16-bit immediate
}

// Decoder decodes MIPS32 machine words into Instructions.
type Decoder struct{}

// NewDecoder creates a new MIPS32 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit MIPS32 instruction word. Decode is total: every
// word maps to exactly one Format, and an opcode/funct combination this core
// does not implement decodes with Op set to OpUnknown.
func (d *Decoder) Decode(word uint32) *Instruction {
	opcode := uint8(word >> 26 & 0x3F)

	switch opcode {
	case 0x00:
		return d.decodeRType(word)
	case 0x02, 0x03:
		return d.decodeJType(word, opcode)
	default:
		return d.decodeIType(word, opcode)
	}
}

// decodeRType decodes the register-register encoding:
// opcode(6) | rs(5) | rt(5) | rd(5) | shamt(5) | funct(6).
func (d *Decoder) decodeRType(word uint32) *Instruction {
	inst := &Instruction{
		Format: FormatR,
		Rs:     uint8(word >> 21 & 0x1F),
		Rt:     uint8(word >> 16 & 0x1F),
		Rd:     uint8(word >> 11 & 0x1F),
		Shamt:  uint8(word >> 6 & 0x1F),
		Funct:  uint8(word & 0x3F),
	}
	inst.Op = rFunctToOp[inst.Funct]
	return inst
}

// decodeJType decodes the jump encoding: opcode(6) | target(26).
func (d *Decoder) decodeJType(word uint32, opcode uint8) *Instruction {
	inst := &Instruction{
		Format: FormatJ,
		Target: word & 0x3FFFFFF,
	}
	if opcode == 0x02 {
		inst.Op = OpJ
	} else {
		inst.Op = OpJAL
	}
	return inst
}

// decodeIType decodes the register-immediate encoding:
// opcode(6) | rs(5) | rt(5) | imm(16).
func (d *Decoder) decodeIType(word uint32, opcode uint8) *Instruction {
	imm16 := uint16(word & 0xFFFF)
	inst := &Instruction{
		Format: FormatI,
		Rs:     uint8(word >> 21 & 0x1F),
		Rt:     uint8(word >> 16 & 0x1F),
		Imm:    int32(int16(imm16)),
		Zimm:   uint32(imm16),
	}
	inst.Op = iOpcodeToOp[opcode]
	return inst
}

// rFunctToOp maps R-type funct codes to mnemonics. Entries absent from this
// table leave Op at its zero value, OpUnknown.
var rFunctToOp = map[uint8]Op{
	0x20: OpADD,
	0x21: OpADDU,
	0x22: OpSUB,
	0x23: OpSUBU,
	0x24: OpAND,
	0x25: OpOR,
	0x26: OpXOR,
	0x27: OpNOR,
	0x00: OpSLL,
	0x02: OpSRL,
	0x03: OpSRA,
	0x04: OpSLLV,
	0x06: OpSRLV,
	0x07: OpSRAV,
	0x18: OpMULT,
	0x19: OpMULTU,
	0x1A: OpDIV,
	0x1B: OpDIVU,
	0x10: OpMFHI,
	0x12: OpMFLO,
	0x08: OpJR,
	0x09: OpJALR,
}

// iOpcodeToOp maps I-type opcodes to mnemonics. mfhi/mflo (0x10/0x12) and
// the beqz pseudo-instruction are intentionally absent: mfhi/mflo are
// R-type funct codes, not I-type opcodes, and beqz is an assembler
// expansion of beq rs, $0, label, not a real opcode.
var iOpcodeToOp = map[uint8]Op{
	0x08: OpADDI,
	0x09: OpADDIU,
	0x0C: OpANDI,
	0x0D: OpORI,
	0x0E: OpXORI,
	0x0A: OpSLTI,
	0x0B: OpSLTIU,
	0x04: OpBEQ,
	0x05: OpBNE,
	0x06: OpBLEZ,
	0x07: OpBGTZ,
	0x20: OpLB,
	0x24: OpLW,
	0x28: OpSW,
	0x29: OpSH,
	0x2A: OpSB,
}
