// masm hand-assembles a line-oriented 6502 source file into a raw binary
// image, sharing the opcode table the cpu and disassemble packages use so
// an instruction can never mean something different to the assembler than
// it does to the core.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"gone/asm"
)

func main() {
	app := &cli.App{
		Name:    "masm",
		Usage:   "masm [--offset ADDR] <input.asm> <output.bin>",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "offset",
				Value: "8000",
				Usage: "load address (hex, no $ prefix) used to resolve labels",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				cli.ShowAppHelp(c)
				return cli.Exit("expected exactly two positional arguments", 86)
			}

			var origin uint16
			if _, err := fmt.Sscanf(c.String("offset"), "%x", &origin); err != nil {
				return cli.Exit(fmt.Sprintf("invalid --offset %q: %v", c.String("offset"), err), 86)
			}

			in, out := c.Args().Get(0), c.Args().Get(1)
			src, err := os.ReadFile(in)
			if err != nil {
				return cli.Exit(fmt.Sprintf("reading %s: %v", in, err), 1)
			}

			program, err := asm.Assemble(string(src), origin)
			if err != nil {
				return cli.Exit(fmt.Sprintf("assembling %s: %v", in, err), 1)
			}

			if err := os.WriteFile(out, program, 0644); err != nil {
				return cli.Exit(fmt.Sprintf("writing %s: %v", out, err), 1)
			}

			fmt.Printf("wrote %d bytes to %s\n", len(program), out)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
