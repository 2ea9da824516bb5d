package emu

// ALU implements MIPS32 arithmetic, logic, shift, and multiply/divide
// operations. add/sub/addi trap on signed overflow architecturally;
// this core documents that divergence and wraps silently instead,
// matching the source program's behavior (see the "Overflow traps"
// design note this core follows).
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD performs rd = rs + rt (wrapping; see the ALU doc comment).
func (a *ALU) ADD(rd, rs, rt uint8) {
	result := a.regFile.ReadReg(rs) + a.regFile.ReadReg(rt)
	a.regFile.WriteReg(rd, result)
}

// ADDU performs rd = rs + rt (wrapping, unsigned).
func (a *ALU) ADDU(rd, rs, rt uint8) {
	a.ADD(rd, rs, rt)
}

// SUB performs rd = rs - rt (wrapping; see the ALU doc comment).
func (a *ALU) SUB(rd, rs, rt uint8) {
	result := a.regFile.ReadReg(rs) - a.regFile.ReadReg(rt)
	a.regFile.WriteReg(rd, result)
}

// SUBU performs rd = rs - rt (wrapping, unsigned).
func (a *ALU) SUBU(rd, rs, rt uint8) {
	a.SUB(rd, rs, rt)
}

// AND performs rd = rs & rt.
func (a *ALU) AND(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)&a.regFile.ReadReg(rt))
}

// OR performs rd = rs | rt.
func (a *ALU) OR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)|a.regFile.ReadReg(rt))
}

// XOR performs rd = rs ^ rt.
func (a *ALU) XOR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)^a.regFile.ReadReg(rt))
}

// NOR performs rd = ~(rs | rt).
func (a *ALU) NOR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, ^(a.regFile.ReadReg(rs) | a.regFile.ReadReg(rt)))
}

// SLL performs rd = rt << shamt (logical).
func (a *ALU) SLL(rd, rt, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)<<shamt)
}

// SRL performs rd = rt >> shamt (logical).
func (a *ALU) SRL(rd, rt, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)>>shamt)
}

// SRA performs rd = rt >> shamt (arithmetic, sign-extending).
func (a *ALU) SRA(rd, rt, shamt uint8) {
	signed := int32(a.regFile.ReadReg(rt))
	a.regFile.WriteReg(rd, uint32(signed>>shamt))
}

// SLLV performs rd = rt << (rs & 0x1F).
func (a *ALU) SLLV(rd, rt, rs uint8) {
	shamt := a.regFile.ReadReg(rs) & 0x1F
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)<<shamt)
}

// SRLV performs rd = rt >> (rs & 0x1F) (logical).
func (a *ALU) SRLV(rd, rt, rs uint8) {
	shamt := a.regFile.ReadReg(rs) & 0x1F
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)>>shamt)
}

// SRAV performs rd = rt >> (rs & 0x1F) (arithmetic).
func (a *ALU) SRAV(rd, rt, rs uint8) {
	shamt := a.regFile.ReadReg(rs) & 0x1F
	signed := int32(a.regFile.ReadReg(rt))
	a.regFile.WriteReg(rd, uint32(signed>>shamt))
}

// MULT splits the signed 64-bit product of rs and rt into HI (upper
// 32 bits) and LO (lower 32 bits).
func (a *ALU) MULT(rs, rt uint8) {
	product := int64(int32(a.regFile.ReadReg(rs))) * int64(int32(a.regFile.ReadReg(rt)))
	a.regFile.HI = uint32(uint64(product) >> 32)
	a.regFile.LO = uint32(uint64(product))
}

// MULTU splits the unsigned 64-bit product of rs and rt into HI and LO.
func (a *ALU) MULTU(rs, rt uint8) {
	product := uint64(a.regFile.ReadReg(rs)) * uint64(a.regFile.ReadReg(rt))
	a.regFile.HI = uint32(product >> 32)
	a.regFile.LO = uint32(product)
}

// DIV performs signed division: LO = rs/rt, HI = rs mod rt. If rt is
// zero, HI and LO are left unchanged (matches the source program's
// division-by-zero policy; see DivisionByZero in the error model).
func (a *ALU) DIV(rs, rt uint8) {
	divisor := int32(a.regFile.ReadReg(rt))
	if divisor == 0 {
		return
	}
	dividend := int32(a.regFile.ReadReg(rs))
	a.regFile.LO = uint32(dividend / divisor)
	a.regFile.HI = uint32(dividend % divisor)
}

// DIVU performs unsigned division: LO = rs/rt, HI = rs mod rt. If rt
// is zero, HI and LO are left unchanged.
func (a *ALU) DIVU(rs, rt uint8) {
	divisor := a.regFile.ReadReg(rt)
	if divisor == 0 {
		return
	}
	dividend := a.regFile.ReadReg(rs)
	a.regFile.LO = dividend / divisor
	a.regFile.HI = dividend % divisor
}

// MFHI performs rd = HI.
func (a *ALU) MFHI(rd uint8) {
	a.regFile.WriteReg(rd, a.regFile.HI)
}

// MFLO performs rd = LO.
func (a *ALU) MFLO(rd uint8) {
	a.regFile.WriteReg(rd, a.regFile.LO)
}

// ADDI performs rt = rs + simm (wrapping; see the ALU doc comment).
func (a *ALU) ADDI(rt, rs uint8, simm int32) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)+uint32(simm))
}

// ADDIU performs rt = rs + simm (wrapping, unsigned).
func (a *ALU) ADDIU(rt, rs uint8, simm int32) {
	a.ADDI(rt, rs, simm)
}

// ANDI performs rt = rs & zimm.
func (a *ALU) ANDI(rt, rs uint8, zimm uint32) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)&zimm)
}

// ORI performs rt = rs | zimm.
func (a *ALU) ORI(rt, rs uint8, zimm uint32) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)|zimm)
}

// XORI performs rt = rs ^ zimm.
func (a *ALU) XORI(rt, rs uint8, zimm uint32) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)^zimm)
}

// SLTI performs rt = (signed rs < simm) ? 1 : 0.
func (a *ALU) SLTI(rt, rs uint8, simm int32) {
	if int32(a.regFile.ReadReg(rs)) < simm {
		a.regFile.WriteReg(rt, 1)
	} else {
		a.regFile.WriteReg(rt, 0)
	}
}

// SLTIU performs rt = (unsigned rs < unsigned zimm) ? 1 : 0.
func (a *ALU) SLTIU(rt, rs uint8, zimm uint32) {
	if a.regFile.ReadReg(rs) < zimm {
		a.regFile.WriteReg(rt, 1)
	} else {
		a.regFile.WriteReg(rt, 0)
	}
}
