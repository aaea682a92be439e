// Package hostpty wires a real pseudo-terminal into a vtcore Engine:
// it starts a shell under github.com/creack/pty, pumps its output into
// Engine.Process, and implements vtcore.PtyWriter over the master side.
package hostpty

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/kernelterm/vtcore"
)

// PTY owns a running shell process and its pseudo-terminal master.
type PTY struct {
	cmd *exec.Cmd
	f   *os.File
}

// Start launches shell (empty string defaults to $SHELL, falling back
// to /bin/sh) attached to a new PTY sized cols x rows.
func Start(shell string, cols, rows int) (*PTY, error) {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell, "-l")
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("hostpty: start %s: %w", shell, err)
	}
	return &PTY{cmd: cmd, f: f}, nil
}

// WritePty implements vtcore.PtyWriter, forwarding engine-generated
// bytes (key encodings, mouse reports, DSR/OSC replies) to the shell.
func (p *PTY) WritePty(data []byte) (int, error) {
	return p.f.Write(data)
}

// Pump blocks reading PTY output and calling process for each chunk,
// until the PTY closes (the shell exits) or an error occurs. Intended
// to run in its own goroutine: engine.Process is not safe to call
// concurrently with anything else touching the same Engine.
func (p *PTY) Pump(process func([]byte)) error {
	buf := make([]byte, 4096)
	for {
		n, err := p.f.Read(buf)
		if n > 0 {
			process(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Resize informs the kernel's PTY layer of a new cell geometry; callers
// must also call Engine logic for grid resize, which vtcore does not
// support after font-manager installation (a new Engine is required).
func (p *PTY) Resize(cols, rows int) error {
	return pty.Setsize(p.f, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

func (p *PTY) Close() error {
	_ = p.f.Close()
	return p.cmd.Wait()
}

var _ vtcore.PtyWriter = (*PTY)(nil)
