package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mips32/emu"
)

var _ = Describe("ALU", func() {
	var (
		rf  *emu.RegFile
		alu *emu.ALU
	)

	BeforeEach(func() {
		rf = &emu.RegFile{}
		alu = emu.NewALU(rf)
	})

	Describe("P4: addu/subu/addiu are pure wrapping", func() {
		It("wraps ADDU on unsigned overflow instead of trapping", func() {
			rf.WriteReg(1, 0xFFFFFFFF)
			rf.WriteReg(2, 2)

			alu.ADDU(3, 1, 2)

			Expect(rf.ReadReg(3)).To(Equal(uint32(1)))
		})

		It("wraps SUBU on unsigned underflow", func() {
			rf.WriteReg(1, 0)
			rf.WriteReg(2, 1)

			alu.SUBU(3, 1, 2)

			Expect(rf.ReadReg(3)).To(Equal(uint32(0xFFFFFFFF)))
		})

		It("wraps ADDIU the same way as ADDU", func() {
			rf.WriteReg(1, 0xFFFFFFFF)

			alu.ADDIU(2, 1, 2)

			Expect(rf.ReadReg(2)).To(Equal(uint32(1)))
		})
	})

	Describe("ADD and SUB diverge from architectural MIPS by wrapping", func() {
		It("wraps ADD on signed overflow rather than trapping", func() {
			rf.WriteReg(1, 0x7FFFFFFF)
			rf.WriteReg(2, 1)

			alu.ADD(3, 1, 2)

			Expect(rf.ReadReg(3)).To(Equal(uint32(0x80000000)))
		})
	})

	Describe("P5: SRA preserves sign", func() {
		It("sign-extends a negative value on arithmetic shift right", func() {
			rf.WriteReg(1, uint32(int32(-8)))

			alu.SRA(2, 1, 1)

			Expect(int32(rf.ReadReg(2))).To(Equal(int32(-4)))
		})

		It("behaves like a logical shift for positive values", func() {
			rf.WriteReg(1, 16)

			alu.SRA(2, 1, 2)

			Expect(rf.ReadReg(2)).To(Equal(uint32(4)))
		})
	})

	Describe("P6: MULT/MULTU split the full 64-bit product into HI:LO", func() {
		It("splits a signed product across HI and LO", func() {
			rf.WriteReg(1, uint32(int32(-2)))
			rf.WriteReg(2, uint32(int32(3)))

			alu.MULT(1, 2)

			product := int64(int32(-2)) * int64(int32(3))
			got := int64(uint64(rf.HI)<<32 | uint64(rf.LO))
			Expect(got).To(Equal(product))
		})

		It("splits an unsigned product across HI and LO", func() {
			rf.WriteReg(1, 0x10000)
			rf.WriteReg(2, 0x10000)

			alu.MULTU(1, 2)

			Expect(rf.HI).To(Equal(uint32(1)))
			Expect(rf.LO).To(Equal(uint32(0)))
		})
	})

	Describe("DIV and DIVU", func() {
		It("computes quotient in LO and remainder in HI", func() {
			rf.WriteReg(1, 17)
			rf.WriteReg(2, 5)

			alu.DIVU(1, 2)

			Expect(rf.LO).To(Equal(uint32(3)))
			Expect(rf.HI).To(Equal(uint32(2)))
		})

		It("leaves HI and LO unchanged on division by zero", func() {
			rf.HI = 11
			rf.LO = 22
			rf.WriteReg(1, 17)

			alu.DIV(1, 0)

			Expect(rf.HI).To(Equal(uint32(11)))
			Expect(rf.LO).To(Equal(uint32(22)))
		})

		Describe("L5: DIVU round-trip", func() {
			It("satisfies (x/y)*y + (x mod y) == x", func() {
				rf.WriteReg(1, 100)
				rf.WriteReg(2, 7)

				alu.DIVU(1, 2)

				Expect(rf.LO*7 + rf.HI).To(Equal(uint32(100)))
			})
		})
	})

	Describe("P7: SLTI/SLTIU", func() {
		It("sets 1 when signed rs is less than the immediate", func() {
			rf.WriteReg(1, uint32(int32(-1)))

			alu.SLTI(2, 1, 0)

			Expect(rf.ReadReg(2)).To(Equal(uint32(1)))
		})

		It("treats the comparison as unsigned for SLTIU", func() {
			rf.WriteReg(1, uint32(int32(-1))) // huge as unsigned

			alu.SLTIU(2, 1, 0)

			Expect(rf.ReadReg(2)).To(Equal(uint32(0)))
		})
	})

	Describe("L1: add via addu with zero leaves the source unchanged", func() {
		It("produces rd == rs", func() {
			rf.WriteReg(1, 77)

			alu.ADDU(2, 1, 0)

			Expect(rf.ReadReg(2)).To(Equal(uint32(77)))
		})
	})

	Describe("L2: AND/OR with self is a move", func() {
		It("AND rs, rs equals rs", func() {
			rf.WriteReg(1, 0xABCD)

			alu.AND(2, 1, 1)

			Expect(rf.ReadReg(2)).To(Equal(uint32(0xABCD)))
		})

		It("OR rs, rs equals rs", func() {
			rf.WriteReg(1, 0xABCD)

			alu.OR(2, 1, 1)

			Expect(rf.ReadReg(2)).To(Equal(uint32(0xABCD)))
		})
	})

	Describe("L3: SLL by 0 is a move", func() {
		It("leaves the value unchanged", func() {
			rf.WriteReg(1, 42)

			alu.SLL(2, 1, 0)

			Expect(rf.ReadReg(2)).To(Equal(uint32(42)))
		})
	})

	Describe("L4: XOR with self zeros the destination", func() {
		It("produces zero", func() {
			rf.WriteReg(1, 0xFFFF)

			alu.XOR(2, 1, 1)

			Expect(rf.ReadReg(2)).To(Equal(uint32(0)))
		})
	})

	Describe("P2: writes to the zero register are suppressed", func() {
		It("leaves register 0 at zero after an ADD targeting it", func() {
			rf.WriteReg(1, 5)
			rf.WriteReg(2, 5)

			alu.ADD(0, 1, 2)

			Expect(rf.ReadReg(0)).To(Equal(uint32(0)))
		})
	})
})
