package emu

// DefaultMemorySize is the default capacity, in words, of a freshly
// constructed Memory when the embedder does not request a specific size.
const DefaultMemorySize = 1024

// Memory is the simulator's flat, word-indexed backing store for both
// instructions and data. It has no separate instruction/data address
// space: the loader, the fetch stage, and load/store instructions all
// address the same array.
//
// Byte and halfword stores and loads operate on the low-order bits of
// the addressed word rather than on sub-word byte lanes. This matches
// the source program's single word-indexed array exactly (see the
// "Instruction vs. data memory" design note this core follows) rather
// than the architecturally faithful MIPS byte-addressed model.
type Memory struct {
	words []uint32
}

// NewMemory creates a Memory with the given capacity in words.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultMemorySize
	}
	return &Memory{words: make([]uint32, capacity)}
}

// Size returns the memory's capacity in words.
func (m *Memory) Size() int {
	return len(m.words)
}

// InBounds reports whether addr names a valid word index.
func (m *Memory) InBounds(addr uint32) bool {
	return addr < uint32(len(m.words))
}

// ReadWord reads the full 32-bit word at addr. The caller must check
// InBounds first; ReadWord panics on an out-of-range address, mirroring
// a slice index panic rather than silently returning a wrapped value.
func (m *Memory) ReadWord(addr uint32) uint32 {
	return m.words[addr]
}

// WriteWord writes the full 32-bit word at addr.
func (m *Memory) WriteWord(addr uint32, value uint32) {
	m.words[addr] = value
}

// ReadByte reads the low-order 8 bits of the word at addr.
func (m *Memory) ReadByte(addr uint32) uint8 {
	return uint8(m.words[addr])
}

// WriteByte replaces the low-order 8 bits of the word at addr, leaving
// the rest of the word untouched.
func (m *Memory) WriteByte(addr uint32, value uint8) {
	m.words[addr] = m.words[addr]&^0xFF | uint32(value)
}

// WriteHalf replaces the low-order 16 bits of the word at addr, leaving
// the rest of the word untouched.
func (m *Memory) WriteHalf(addr uint32, value uint16) {
	m.words[addr] = m.words[addr]&^0xFFFF | uint32(value)
}

// LoadWords copies src into memory starting at word index 0, returning
// the number of words actually copied. It never copies more than
// Size() words regardless of len(src).
func (m *Memory) LoadWords(src []uint32) int {
	n := copy(m.words, src)
	return n
}
