package emu

// LoadStoreUnit implements MIPS32 load and store operations against a
// flat word-indexed Memory. Byte and halfword stores write the
// low-order bits of the addressed word rather than a sub-word byte
// lane; see the Memory doc comment for why this core follows that
// model instead of the architecturally faithful byte-addressed one.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

// effectiveAddr computes rs + simm and reports whether it names a
// valid word index.
func (lsu *LoadStoreUnit) effectiveAddr(rs uint8, simm int32) (uint32, bool) {
	addr := uint32(int64(lsu.regFile.ReadReg(rs)) + int64(simm))
	return addr, lsu.memory.InBounds(addr)
}

// LB loads the sign-extended low byte of memory[rs+simm] into rt.
func (lsu *LoadStoreUnit) LB(rt, rs uint8, simm int32) error {
	addr, ok := lsu.effectiveAddr(rs, simm)
	if !ok {
		return ErrMemoryOutOfBounds
	}
	value := int32(int8(lsu.memory.ReadByte(addr)))
	lsu.regFile.WriteReg(rt, uint32(value))
	return nil
}

// LW loads the full word memory[rs+simm] into rt.
func (lsu *LoadStoreUnit) LW(rt, rs uint8, simm int32) error {
	addr, ok := lsu.effectiveAddr(rs, simm)
	if !ok {
		return ErrMemoryOutOfBounds
	}
	lsu.regFile.WriteReg(rt, lsu.memory.ReadWord(addr))
	return nil
}

// SW stores rt into the full word memory[rs+simm].
func (lsu *LoadStoreUnit) SW(rt, rs uint8, simm int32) error {
	addr, ok := lsu.effectiveAddr(rs, simm)
	if !ok {
		return ErrMemoryOutOfBounds
	}
	lsu.memory.WriteWord(addr, lsu.regFile.ReadReg(rt))
	return nil
}

// SH stores the low 16 bits of rt into memory[rs+simm], leaving the
// rest of the addressed word untouched.
func (lsu *LoadStoreUnit) SH(rt, rs uint8, simm int32) error {
	addr, ok := lsu.effectiveAddr(rs, simm)
	if !ok {
		return ErrMemoryOutOfBounds
	}
	lsu.memory.WriteHalf(addr, uint16(lsu.regFile.ReadReg(rt)))
	return nil
}

// SB stores the low 8 bits of rt into memory[rs+simm], leaving the
// rest of the addressed word untouched.
func (lsu *LoadStoreUnit) SB(rt, rs uint8, simm int32) error {
	addr, ok := lsu.effectiveAddr(rs, simm)
	if !ok {
		return ErrMemoryOutOfBounds
	}
	lsu.memory.WriteByte(addr, uint8(lsu.regFile.ReadReg(rt)))
	return nil
}
