package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadNasFile reads a NASCOM monitor-dump text file into mem. A line
// beginning with "." ends the scan; every other non-blank line must hold
// nine whitespace-separated hex fields (a 16-bit address, then eight
// bytes). Lines need not be contiguous or sorted, and writes bypass the
// ROM guard so monitor images can be loaded into the ROM windows.
func LoadNasFile(path string, mem *MemoryBus) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, ".") {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 9 {
			return fmt.Errorf("%s:%d: malformed line: expected 9 fields, got %d", path, lineNo, len(fields))
		}
		addr, err := strconv.ParseUint(fields[0], 16, 16)
		if err != nil {
			return fmt.Errorf("%s:%d: malformed address %q", path, lineNo, fields[0])
		}
		for i, field := range fields[1:] {
			v, err := strconv.ParseUint(field, 16, 8)
			if err != nil {
				return fmt.Errorf("%s:%d: malformed byte %q", path, lineNo, field)
			}
			mem.RawWrite(uint16(addr)+uint16(i), byte(v))
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
