// Package insts provides MIPS32 instruction definitions and decoding.
//
// This package implements decoding of 32-bit MIPS32 machine words into
// structured instruction representations. It supports the three classic
// MIPS instruction encodings:
//
//   - R-type (register-register): opcode 0x00, dispatched further by funct
//   - J-type (jump): opcodes 0x02 and 0x03
//   - I-type (register-immediate): every other opcode
//
// Usage:
//
//	dec := insts.NewDecoder()
//	inst := dec.Decode(0x20080002) // addi $8, $0, 2
//	fmt.Printf("Op: %v, Rt: %d, Imm: %d\n", inst.Op, inst.Rt, inst.Imm)
package insts
