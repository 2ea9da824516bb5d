// Package main provides the command-line entry point for the MIPS32
// interpreter.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mips32/emu"
	"mips32/loader"
)

var (
	suffix  = flag.String("ext", "", "required filename suffix; empty disables the check")
	verbose = flag.Bool("v", false, "print register file and instruction count on exit")
	strict  = flag.Bool("strict", false, "treat unknown instructions as fatal")
	memSize = flag.Int("mem", emu.DefaultMemorySize, "memory capacity in words")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mips32 [options] <program>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	os.Exit(run(flag.Arg(0)))
}

func run(programPath string) int {
	result, err := loader.LoadFile(programPath, *suffix, *memSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mips32: %v\n", err)
		return 1
	}
	if result.Truncated {
		fmt.Fprintf(os.Stderr, "mips32: warning: image exceeds %d-word capacity, truncated\n", *memSize)
	}

	opts := []emu.EmulatorOption{
		emu.WithMemorySize(*memSize),
		emu.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	}
	if *strict {
		opts = append(opts, emu.WithUnknownInstructionFatal())
	}

	emulator := emu.NewEmulator(opts...)
	emulator.LoadWords(result.Words)

	if runErr := emulator.Run(); runErr != nil {
		fmt.Fprintf(os.Stderr, "mips32: %v\n", runErr)
		return 1
	}

	if *verbose {
		printState(emulator)
	}
	return 0
}

func printState(e *emu.Emulator) {
	rf := e.RegFile()
	fmt.Printf("instructions executed: %d\n", e.InstructionCount())
	fmt.Printf("PC=%d HI=%d LO=%d\n", rf.PC, rf.HI, rf.LO)
	for i := 0; i < 32; i++ {
		fmt.Printf("$%-2d = %d\n", i, rf.ReadReg(uint8(i)))
	}
}
