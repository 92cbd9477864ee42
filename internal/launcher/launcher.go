// Package launcher spawns external terminal games in a PTY and buffers
// their output for display inside the hub.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner is the interface for spawning and controlling a PTY.
// Implementations can be swapped (e.g. creack/pty, or a mock for tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. Spawns cmd in a PTY with the given size.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	f, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	// Context cancellation is handled by the caller closing the returned file.
	return f, nil
}

// Resize implements Runner. Resizes the PTY to the given dimensions.
// The rwc must be the *os.File returned by Start; other types are no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// Command builds an exec.Cmd from a configured command line.
// Returns an error for empty command lines.
func Command(ctx context.Context, line string) (*exec.Cmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty game command")
	}
	return exec.CommandContext(ctx, fields[0], fields[1:]...), nil
}

// OutputRing keeps the most recent lines of launcher output.
type OutputRing struct {
	lines []string
	max   int
}

// NewOutputRing creates a ring holding at most max lines.
func NewOutputRing(max int) *OutputRing {
	if max <= 0 {
		max = 200
	}
	return &OutputRing{max: max}
}

// Append adds a line, evicting the oldest once full.
func (r *OutputRing) Append(line string) {
	r.lines = append(r.lines, line)
	if len(r.lines) > r.max {
		r.lines = r.lines[len(r.lines)-r.max:]
	}
}

// Lines returns the buffered lines, oldest first.
func (r *OutputRing) Lines() []string {
	return r.lines
}

// Tail returns up to n most recent lines, oldest first.
func (r *OutputRing) Tail(n int) []string {
	if n <= 0 || len(r.lines) == 0 {
		return nil
	}
	if n >= len(r.lines) {
		return r.lines
	}
	return r.lines[len(r.lines)-n:]
}
