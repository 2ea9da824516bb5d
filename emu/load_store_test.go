package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mips32/emu"
)

var _ = Describe("LoadStoreUnit", func() {
	var (
		rf  *emu.RegFile
		mem *emu.Memory
		lsu *emu.LoadStoreUnit
	)

	BeforeEach(func() {
		rf = &emu.RegFile{}
		mem = emu.NewMemory(16)
		lsu = emu.NewLoadStoreUnit(rf, mem)
	})

	Describe("LW and SW", func() {
		It("round-trips a full word through memory", func() {
			rf.WriteReg(1, 0) // base
			rf.WriteReg(2, 0xCAFEBABE)

			Expect(lsu.SW(2, 1, 4)).To(Succeed())
			Expect(lsu.LW(3, 1, 4)).To(Succeed())

			Expect(rf.ReadReg(3)).To(Equal(uint32(0xCAFEBABE)))
		})
	})

	Describe("SH and SB", func() {
		It("only overwrites the low-order bits of the addressed word", func() {
			mem.WriteWord(2, 0xAABBCCDD)
			rf.WriteReg(1, 0)
			rf.WriteReg(2, 0x1234)

			Expect(lsu.SH(2, 1, 2)).To(Succeed())

			Expect(mem.ReadWord(2)).To(Equal(uint32(0xAABB1234)))
		})

		It("SB leaves everything but the low byte untouched", func() {
			mem.WriteWord(2, 0xAABBCCDD)
			rf.WriteReg(1, 0)
			rf.WriteReg(2, 0xFF)

			Expect(lsu.SB(2, 1, 2)).To(Succeed())

			Expect(mem.ReadWord(2)).To(Equal(uint32(0xAABBCCFF)))
		})
	})

	Describe("LB", func() {
		It("sign-extends a negative low byte", func() {
			mem.WriteWord(1, 0x000000FF)
			rf.WriteReg(1, 0)

			Expect(lsu.LB(2, 1, 1)).To(Succeed())

			Expect(int32(rf.ReadReg(2))).To(Equal(int32(-1)))
		})

		It("zero-extends a positive low byte", func() {
			mem.WriteWord(1, 0x0000007F)
			rf.WriteReg(1, 0)

			Expect(lsu.LB(2, 1, 1)).To(Succeed())

			Expect(rf.ReadReg(2)).To(Equal(uint32(0x7F)))
		})
	})

	Describe("MemoryOutOfBounds", func() {
		It("rejects an effective address at or past capacity", func() {
			rf.WriteReg(1, 0)

			err := lsu.LW(2, 1, 16)

			Expect(err).To(MatchError(emu.ErrMemoryOutOfBounds))
		})

		It("rejects a negative effective address", func() {
			rf.WriteReg(1, 0)

			err := lsu.SW(2, 1, -1)

			Expect(err).To(MatchError(emu.ErrMemoryOutOfBounds))
		})
	})
})
