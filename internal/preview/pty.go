package preview

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// Size is a preview area in terminal cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns a command attached to a terminal of the given size.
// Implementations can be swapped (e.g. creack/pty, or a fake for tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadCloser, error)
}

// CreackPTY implements Runner using github.com/creack/pty. Image renderers
// size and colour their output from the terminal they see, so they need a
// real PTY rather than a pipe.
type CreackPTY struct{}

// Ensure CreackPTY implements Runner.
var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. Spawns cmd in a PTY with the given size.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	f, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return nil, err
	}
	// Cancellation kills the process via exec.CommandContext; closing f is the caller's job.
	return f, nil
}

// readAll drains a PTY. On Linux the master returns EIO once the child has
// exited and the slave side is closed; that is the PTY's EOF.
func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil && errors.Is(err, syscall.EIO) {
		return b, nil
	}
	return b, err
}
