package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalHost reads raw stdin and feeds decoded keystrokes into a
// Keyboard. Only instantiated in main.go for interactive use — never in
// tests.
type TerminalHost struct {
	keyboard     *Keyboard
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter that reads stdin into the given keyboard.
func NewTerminalHost(kbd *Keyboard) *TerminalHost {
	return &TerminalHost{
		keyboard: kbd,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start sets stdin to raw, non-blocking mode and begins reading in a
// goroutine. Call Stop() to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)
		var csi csiState

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				h.feed(buf[0], &csi)
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// csiState tracks how far into an ESC [ X escape sequence the reader has
// gotten, so a lone Escape keypress isn't mistaken for the start of one.
type csiState int

const (
	csiNone csiState = iota
	csiSawEscape
	csiSawBracket
)

// feed advances the tiny CSI state machine and forwards either an arrow
// key or a plain byte to the keyboard.
func (h *TerminalHost) feed(b byte, csi *csiState) {
	switch *csi {
	case csiSawEscape:
		if b == '[' {
			*csi = csiSawBracket
			return
		}
		*csi = csiNone
	case csiSawBracket:
		*csi = csiNone
		switch b {
		case 'A':
			h.keyboard.PushArrow(matrixCodeUp)
		case 'B':
			h.keyboard.PushArrow(matrixCodeDown)
		case 'C':
			h.keyboard.PushArrow(matrixCodeRight)
		case 'D':
			h.keyboard.PushArrow(matrixCodeLeft)
		}
		return
	}

	if b == 0x1B {
		*csi = csiSawEscape
		return
	}
	if b == '\r' {
		b = '\n'
	}
	if b == 0x7F {
		b = 0x08
	}
	h.keyboard.Push(b)
}

// Stop terminates the stdin reading goroutine and restores stdin to blocking mode.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
