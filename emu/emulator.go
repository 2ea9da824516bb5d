// Package emu provides functional MIPS32 emulation.
package emu

import (
	"fmt"
	"log/slog"
	"os"

	"mips32/insts"
)

// StepResult represents the outcome of executing a single instruction.
type StepResult struct {
	// Exited is true once PC has walked off the loaded region.
	Exited bool

	// Err is set when the driver or an executor handler signals a
	// fatal condition (ErrMemoryOutOfBounds, or ErrUnknownInstruction
	// when WithUnknownInstructionFatal is set).
	Err error
}

// Emulator drives the fetch-decode-execute loop over a single
// architectural state: register file, HI/LO, PC, and memory.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	logger *slog.Logger

	loadedWords      int
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit

	unknownInstructionFatal bool
}

// EmulatorOption configures an Emulator at construction time.
type EmulatorOption func(*Emulator)

// WithLogger sets the logger used for non-fatal diagnostics (unknown
// instructions, division by zero). The default logs to stderr.
func WithLogger(logger *slog.Logger) EmulatorOption {
	return func(e *Emulator) { e.logger = logger }
}

// WithMaxInstructions bounds the number of instructions Run/Step will
// execute. 0 (the default) means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) { e.maxInstructions = max }
}

// WithMemorySize overrides the default memory capacity, in words.
func WithMemorySize(words int) EmulatorOption {
	return func(e *Emulator) { e.memory = NewMemory(words) }
}

// WithUnknownInstructionFatal makes an OpUnknown decode fatal instead
// of the default policy of logging and continuing with PC advanced
// normally (see the "Unknown-instruction policy" design note).
func WithUnknownInstructionFatal() EmulatorOption {
	return func(e *Emulator) { e.unknownInstructionFatal = true }
}

// NewEmulator creates a new MIPS32 emulator with all architectural
// state zeroed, per the driver's initialization contract.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := &RegFile{}

	e := &Emulator{
		regFile: regFile,
		memory:  NewMemory(DefaultMemorySize),
		decoder: insts.NewDecoder(),
		logger:  slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.alu = NewALU(e.regFile)
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory)
	e.branchUnit = NewBranchUnit(e.regFile)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadWords loads a decoded instruction image into memory[0..n] and
// records how many words are considered "loaded region" for the
// driver's termination rule. PC, registers, HI, and LO are untouched;
// callers construct the Emulator fresh for a new run.
func (e *Emulator) LoadWords(words []uint32) int {
	n := e.memory.LoadWords(words)
	e.loadedWords = n
	return n
}

// Step fetches, decodes, and executes a single instruction, then
// applies the PC-advancement rule: PC += 1 unless the handler already
// set PC (a taken branch or any jump).
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: fmt.Errorf("emu: max instructions (%d) reached", e.maxInstructions)}
	}
	if e.regFile.PC >= uint32(e.loadedWords) {
		return StepResult{Exited: true}
	}

	word := e.memory.ReadWord(e.regFile.PC)
	inst := e.decoder.Decode(word)

	result := e.execute(inst)
	e.instructionCount++
	return result
}

// Run steps the emulator until it exits or a fatal error occurs,
// returning the final error (nil on a clean exit).
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Exited {
			return nil
		}
		if result.Err != nil {
			return result.Err
		}
	}
}

// execute dispatches a decoded instruction to its execution unit. The
// handlers apply the PC-advancement rule themselves; the returned
// StepResult carries only a fatal error, if any.
func (e *Emulator) execute(inst *insts.Instruction) StepResult {
	if inst.Op == insts.OpUnknown {
		e.logger.Warn("unknown instruction", "pc", e.regFile.PC, "format", inst.Format)
		if e.unknownInstructionFatal {
			return StepResult{Err: fmt.Errorf("%w: pc=%d", ErrUnknownInstruction, e.regFile.PC)}
		}
		e.regFile.PC++
		return StepResult{}
	}

	switch inst.Format {
	case insts.FormatR:
		return e.executeRType(inst)
	case insts.FormatJ:
		return e.executeJType(inst)
	case insts.FormatI:
		return e.executeIType(inst)
	default:
		e.regFile.PC++
		return StepResult{}
	}
}

func (e *Emulator) executeRType(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpADD:
		e.alu.ADD(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpADDU:
		e.alu.ADDU(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSUB:
		e.alu.SUB(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSUBU:
		e.alu.SUBU(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpAND:
		e.alu.AND(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpOR:
		e.alu.OR(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpXOR:
		e.alu.XOR(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpNOR:
		e.alu.NOR(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSLL:
		e.alu.SLL(inst.Rd, inst.Rt, inst.Shamt)
	case insts.OpSRL:
		e.alu.SRL(inst.Rd, inst.Rt, inst.Shamt)
	case insts.OpSRA:
		e.alu.SRA(inst.Rd, inst.Rt, inst.Shamt)
	case insts.OpSLLV:
		e.alu.SLLV(inst.Rd, inst.Rt, inst.Rs)
	case insts.OpSRLV:
		e.alu.SRLV(inst.Rd, inst.Rt, inst.Rs)
	case insts.OpSRAV:
		e.alu.SRAV(inst.Rd, inst.Rt, inst.Rs)
	case insts.OpMULT:
		e.alu.MULT(inst.Rs, inst.Rt)
	case insts.OpMULTU:
		e.alu.MULTU(inst.Rs, inst.Rt)
	case insts.OpDIV:
		if e.regFile.ReadReg(inst.Rt) == 0 {
			e.logger.Warn("division by zero", "pc", e.regFile.PC)
		}
		e.alu.DIV(inst.Rs, inst.Rt)
	case insts.OpDIVU:
		if e.regFile.ReadReg(inst.Rt) == 0 {
			e.logger.Warn("division by zero", "pc", e.regFile.PC)
		}
		e.alu.DIVU(inst.Rs, inst.Rt)
	case insts.OpMFHI:
		e.alu.MFHI(inst.Rd)
	case insts.OpMFLO:
		e.alu.MFLO(inst.Rd)
	case insts.OpJR:
		e.branchUnit.JR(inst.Rs)
		return StepResult{}
	case insts.OpJALR:
		e.branchUnit.JALR(inst.Rd, inst.Rs)
		return StepResult{}
	}
	e.regFile.PC++
	return StepResult{}
}

func (e *Emulator) executeJType(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpJ:
		e.branchUnit.J(inst.Target)
	case insts.OpJAL:
		e.branchUnit.JAL(inst.Target)
	}
	return StepResult{}
}

func (e *Emulator) executeIType(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpADDI:
		e.alu.ADDI(inst.Rt, inst.Rs, inst.Imm)
	case insts.OpADDIU:
		e.alu.ADDIU(inst.Rt, inst.Rs, inst.Imm)
	case insts.OpANDI:
		e.alu.ANDI(inst.Rt, inst.Rs, inst.Zimm)
	case insts.OpORI:
		e.alu.ORI(inst.Rt, inst.Rs, inst.Zimm)
	case insts.OpXORI:
		e.alu.XORI(inst.Rt, inst.Rs, inst.Zimm)
	case insts.OpSLTI:
		e.alu.SLTI(inst.Rt, inst.Rs, inst.Imm)
	case insts.OpSLTIU:
		e.alu.SLTIU(inst.Rt, inst.Rs, inst.Zimm)
	case insts.OpBEQ:
		if e.branchUnit.BEQ(inst.Rs, inst.Rt, inst.Imm) {
			return StepResult{}
		}
	case insts.OpBNE:
		if e.branchUnit.BNE(inst.Rs, inst.Rt, inst.Imm) {
			return StepResult{}
		}
	case insts.OpBLEZ:
		if e.branchUnit.BLEZ(inst.Rs, inst.Imm) {
			return StepResult{}
		}
	case insts.OpBGTZ:
		if e.branchUnit.BGTZ(inst.Rs, inst.Imm) {
			return StepResult{}
		}
	case insts.OpLB:
		if err := e.lsu.LB(inst.Rt, inst.Rs, inst.Imm); err != nil {
			return StepResult{Err: err}
		}
	case insts.OpLW:
		if err := e.lsu.LW(inst.Rt, inst.Rs, inst.Imm); err != nil {
			return StepResult{Err: err}
		}
	case insts.OpSW:
		if err := e.lsu.SW(inst.Rt, inst.Rs, inst.Imm); err != nil {
			return StepResult{Err: err}
		}
	case insts.OpSH:
		if err := e.lsu.SH(inst.Rt, inst.Rs, inst.Imm); err != nil {
			return StepResult{Err: err}
		}
	case insts.OpSB:
		if err := e.lsu.SB(inst.Rt, inst.Rs, inst.Imm); err != nil {
			return StepResult{Err: err}
		}
	}
	e.regFile.PC++
	return StepResult{}
}
