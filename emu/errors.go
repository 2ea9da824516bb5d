package emu

import "errors"

// Fatal error kinds the executor and driver can signal. Non-fatal
// conditions (CapacityExceeded at load time, UnknownInstruction,
// DivisionByZero) are handled by policy rather than by unwinding; see
// the WithUnknownInstructionFatal option and the Step/Run contract.
var (
	// ErrMemoryOutOfBounds is returned when a load/store effective
	// address names a word index outside the memory's capacity. A PC
	// outside the loaded region ends the run cleanly instead.
	ErrMemoryOutOfBounds = errors.New("emu: memory address out of bounds")

	// ErrUnknownInstruction is returned when WithUnknownInstructionFatal
	// is set and the decoder produces insts.OpUnknown.
	ErrUnknownInstruction = errors.New("emu: unknown instruction")
)
