// See license file for copyright and license details.

// nesrun runs a 6502 program until BRK and prints the final CPU state.
//
//	nesrun -bin program.bin [-dump 0x0000:0x20]
//	nesrun -rom game.nes [-max-steps 1000]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/MarcoLucidi01/nes/nes"
	"github.com/MarcoLucidi01/nes/nes/cpu"
)

var (
	binFlag      = flag.String("bin", "", "raw program image, loaded at $8000")
	romFlag      = flag.String("rom", "", "iNES rom file (mapper 0)")
	dumpFlag     = flag.String("dump", "", "memory range to print after the run, as addr:len")
	maxStepsFlag = flag.Int("max-steps", 0, "stop after this many instructions, 0 runs until BRK")
)

var errMaxSteps = errors.New("step limit reached")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -bin FILE | -rom FILE [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if (*binFlag == "") == (*romFlag == "") {
		flag.Usage()
		os.Exit(2)
	}

	dumpAddr, dumpLen, err := parseDump(*dumpFlag)
	if err != nil {
		glog.Exitf("-dump: %v", err)
	}

	c, err := newCPU(*binFlag, *romFlag)
	if err != nil {
		glog.Exit(err)
	}

	runErr := run(c, *maxStepsFlag)
	printState(os.Stdout, c)
	if dumpLen > 0 {
		printDump(os.Stdout, c, dumpAddr, dumpLen)
	}
	if runErr != nil && !errors.Is(runErr, errMaxSteps) {
		glog.Exit(runErr)
	}
	if runErr != nil {
		glog.Warning(runErr)
	}
}

// newCPU returns a CPU reset and ready to run the program in binPath or
// romPath.
func newCPU(binPath, romPath string) (*cpu.CPU, error) {
	if romPath != "" {
		rom, err := nes.ReadRomFile(romPath)
		if err != nil {
			return nil, err
		}
		console, err := nes.NewConsole(rom)
		if err != nil {
			return nil, err
		}
		return console.CPU, nil
	}

	program, err := os.ReadFile(binPath)
	if err != nil {
		return nil, err
	}
	c := cpu.New()
	if err := c.Load(program); err != nil {
		return nil, fmt.Errorf("%s: %w", binPath, err)
	}
	c.Reset()
	return c, nil
}

// run runs c until BRK, an error or maxSteps instructions, if maxSteps > 0.
func run(c *cpu.CPU, maxSteps int) error {
	if maxSteps <= 0 {
		return c.Run()
	}
	for i := 0; i < maxSteps; i++ {
		if err := c.Step(); err != nil {
			return err
		}
		if c.Halted() {
			return nil
		}
	}
	return fmt.Errorf("%w: %d", errMaxSteps, maxSteps)
}

// parseDump parses "addr:len", both numbers accept 0x and $ prefixes.
func parseDump(s string) (uint16, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	a, l, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%q: missing length", s)
	}
	addr, err := parseNum(a, 0xffff)
	if err != nil {
		return 0, 0, err
	}
	n, err := parseNum(l, cpu.MemorySize)
	if err != nil {
		return 0, 0, err
	}
	return uint16(addr), int(n), nil
}

func parseNum(s string, limit uint64) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	if n > limit {
		return 0, fmt.Errorf("%s: out of range", s)
	}
	return n, nil
}

func printState(w io.Writer, c *cpu.CPU) {
	fmt.Fprintf(w, "PC:%04X A:%02X X:%02X Y:%02X P:%02X (%s) CYC:%d\n",
		c.PC(), c.A(), c.X(), c.Y(), uint8(c.Status()), c.Status(), c.Cycles())
}

// printDump prints n bytes from addr, 16 per line. addresses wrap at $FFFF.
func printDump(w io.Writer, c *cpu.CPU, addr uint16, n int) {
	for i := 0; i < n; i += 16 {
		fmt.Fprintf(w, "%04X ", addr+uint16(i))
		for j := i; j < i+16 && j < n; j++ {
			fmt.Fprintf(w, " %02X", c.Read(addr+uint16(j)))
		}
		fmt.Fprintln(w)
	}
}
