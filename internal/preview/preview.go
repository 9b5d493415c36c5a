// Package preview turns image assets into ANSI text that fits a terminal
// cell box, by running a terminal image renderer (chafa by default) inside
// a PTY. Previews that cannot be produced stay as skeleton placeholders.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"termfolio/internal/assets"
)

// DefaultCommand is the renderer looked up on PATH.
const DefaultCommand = "chafa"

var (
	// ErrAssetMissing means the referenced image file does not exist.
	ErrAssetMissing = errors.New("asset missing")
	// ErrRendererMissing means the renderer command is not installed.
	ErrRendererMissing = errors.New("image renderer not found")
)

// ArgsFunc builds the renderer's argument list for one image.
type ArgsFunc func(path string, size Size) []string

// ChafaArgs renders with symbols only so the output is plain ANSI text.
func ChafaArgs(path string, size Size) []string {
	return []string{
		"--animate=off",
		"--format=symbols",
		fmt.Sprintf("--size=%dx%d", size.Cols, size.Rows),
		path,
	}
}

// Renderer renders one image at a time.
type Renderer struct {
	Command  string
	Args     ArgsFunc
	Runner   Runner
	Assets   *assets.Resolver
	LookPath func(string) (string, error)
	Logger   *slog.Logger
}

// NewRenderer returns a PTY-backed renderer for command (DefaultCommand if empty).
func NewRenderer(command string, res *assets.Resolver, logger *slog.Logger) *Renderer {
	if command == "" {
		command = DefaultCommand
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		Command:  command,
		Args:     ChafaArgs,
		Runner:   &CreackPTY{},
		Assets:   res,
		LookPath: exec.LookPath,
		Logger:   logger,
	}
}

// Render produces at most size.Rows lines of at most size.Cols cells.
func (r *Renderer) Render(ctx context.Context, ref string, size Size) (string, error) {
	if size.Rows == 0 || size.Cols == 0 {
		return "", nil
	}
	if r.Assets == nil || !r.Assets.Exists(ref) {
		return "", fmt.Errorf("%w: %s", ErrAssetMissing, ref)
	}
	bin, err := r.LookPath(r.Command)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRendererMissing, r.Command, err)
	}

	cmd := exec.CommandContext(ctx, bin, r.Args(r.Assets.Resolve(ref), size)...)
	out, err := r.Runner.Start(ctx, cmd, size)
	if err != nil {
		return "", fmt.Errorf("starting %s: %w", r.Command, err)
	}
	defer out.Close()

	raw, err := readAll(out)
	if cmd.Process != nil {
		_ = cmd.Wait()
	}
	if err != nil {
		return "", fmt.Errorf("reading %s output: %w", r.Command, err)
	}
	return normalize(string(raw), size), nil
}

// cursorToggles are emitted by renderers that think they own the terminal.
var cursorToggles = strings.NewReplacer("\x1b[?25l", "", "\x1b[?25h", "", "\r", "")

// normalize strips PTY line endings and cursor toggles and clips the
// output to the requested box.
func normalize(raw string, size Size) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = cursorToggles.Replace(raw)
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(lines) > int(size.Rows) {
		lines = lines[:size.Rows]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, int(size.Cols), "")
	}
	return strings.Join(lines, "\n")
}

// Skeleton is the placeholder shown until (or instead of) a preview.
func Skeleton(size Size) string {
	if size.Rows == 0 || size.Cols == 0 {
		return ""
	}
	row := strings.Repeat("░", int(size.Cols))
	lines := make([]string, size.Rows)
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

// Key identifies a cached preview.
type Key struct {
	Ref  string
	Size Size
}

type entry struct {
	text string
	err  error
}

// Cache memoizes previews, including failures: a missing asset is not
// retried and keeps showing its skeleton. Safe for concurrent use since
// previews render inside commands off the UI loop.
type Cache struct {
	renderer *Renderer
	mu       sync.Mutex
	entries  map[Key]entry
}

// NewCache wraps renderer. A nil renderer caches ErrRendererMissing for
// every key.
func NewCache(renderer *Renderer) *Cache {
	return &Cache{renderer: renderer, entries: make(map[Key]entry)}
}

// Get returns a finished preview. ok is false while nothing is cached or
// when rendering failed.
func (c *Cache) Get(k Key) (text string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[k]
	if !found || e.err != nil {
		return "", false
	}
	return e.text, true
}

// Settled reports whether k has been attempted, successfully or not.
func (c *Cache) Settled(k Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, found := c.entries[k]
	return found
}

// Load renders k unless it is already cached and returns the outcome.
func (c *Cache) Load(ctx context.Context, k Key) (string, error) {
	c.mu.Lock()
	if e, found := c.entries[k]; found {
		c.mu.Unlock()
		return e.text, e.err
	}
	c.mu.Unlock()

	var e entry
	if c.renderer == nil {
		e.err = ErrRendererMissing
	} else {
		e.text, e.err = c.renderer.Render(ctx, k.Ref, k.Size)
		if e.err != nil {
			c.renderer.Logger.Debug("preview unavailable", "ref", k.Ref, "error", e.err)
		}
	}
	if ctx.Err() != nil && e.err != nil {
		// Cancelled renders are not a verdict on the asset.
		return "", e.err
	}

	c.mu.Lock()
	c.entries[k] = e
	c.mu.Unlock()
	return e.text, e.err
}
