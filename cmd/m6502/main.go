// Command m6502 loads a raw 6502 binary image and runs it, disassembles it,
// or drives it through the interactive step debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gone/cpu"
	"gone/disassemble"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "m6502",
		Short: "m6502 — a MOS 6502 emulator core: run, disassemble, or step a binary image",
	}

	rootCmd.AddCommand(runCmd(), disasmCmd(), debugCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Load a binary at $8000 and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			c := cpu.New()
			if err := c.LoadAndRun(program); err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			fmt.Printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X\n", c.A, c.X, c.Y, c.SP, c.PC)
			fmt.Printf("N=%v V=%v D=%v I=%v Z=%v C=%v\n",
				c.Flags.Negative, c.Flags.Overflow, c.Flags.Decimal,
				c.Flags.DisableInterrupt, c.Flags.Zero, c.Flags.Carry)
			return nil
		},
	}
}

func disasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm <file>",
		Short: "Print a full disassembly of a binary image loaded at $8000",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			const loadAddr = 0x8000
			c := cpu.New()
			c.Load(program)

			for _, line := range disassemble.Program(c.Mem, loadAddr, loadAddr+uint16(len(program))) {
				fmt.Println(line)
			}
			return nil
		},
	}
}

func debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <file>",
		Short: "Launch the interactive TUI debugger against a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			return cpu.Debug(program, 0x8000)
		},
	}
}
