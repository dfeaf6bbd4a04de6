// main.go - Main entry point for the NASCOM-2 emulator

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m")
	fmt.Println("\nA Z80 / NASCOM-2 emulator.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

// nascomBus adapts a MemoryBus and a PortBus to the Z80Bus interface the
// CPU core expects.
type nascomBus struct {
	mem   *MemoryBus
	ports *PortBus
}

func (b *nascomBus) Read(addr uint16) byte         { return b.mem.Read(addr) }
func (b *nascomBus) Write(addr uint16, value byte) { b.mem.Write(addr, value) }
func (b *nascomBus) In(port uint16) byte           { return b.ports.In(port) }
func (b *nascomBus) Out(port uint16, value byte)   { b.ports.Out(port, value) }

func main() {
	boilerPlate()

	var (
		rom1       string
		rom2       string
		rom3       string
		delay      time.Duration
		reportMips bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&rom1, "rom1", "nassys3.nal", "monitor ROM image")
	flagSet.StringVar(&rom2, "rom2", "nastest.nal", "diagnostic ROM image")
	flagSet.StringVar(&rom3, "rom3", "basic.nal", "BASIC ROM image")
	flagSet.DurationVar(&delay, "delay", 0, "artificial delay between instructions")
	flagSet.BoolVar(&reportMips, "mips", false, "report approximate instructions/sec on exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./nascom [-rom1 file] [-rom2 file] [-rom3 file] [-delay d] [-mips]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	mem := NewMemoryBus(nil)
	for _, rom := range []string{rom1, rom2, rom3} {
		if err := LoadNasFile(rom, mem); err != nil {
			fmt.Printf("Error loading ROM image: %v\n", err)
			os.Exit(1)
		}
	}

	ports := NewPortBus()
	term := NewTerminalOutput(mem)
	mem.onVideoHit = term.Redraw

	cpu := NewCPU_Z80(&nascomBus{mem: mem, ports: ports})
	cpu.Reset()

	kbd := NewKeyboard(ports)
	host := NewTerminalHost(kbd)

	term.Clear()
	host.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		host.Stop()
		os.Exit(0)
	}()

	start := time.Now()
	var instructions uint64
	for {
		kbd.Poll(time.Now())
		cpu.Step()
		instructions++
		if delay > 0 {
			time.Sleep(delay)
		}
		if reportMips && instructions%1_000_000 == 0 {
			elapsed := time.Since(start).Seconds()
			if elapsed > 0 {
				fmt.Fprintf(os.Stderr, "\r%.2f MIPS", float64(instructions)/elapsed/1_000_000)
			}
		}
	}
}
