// Package opener hands external links (sites, repositories, the résumé,
// time-lapse videos) to the platform's default handler via exec.
package opener

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrEmptyTarget is returned when there is nothing to open.
var ErrEmptyTarget = errors.New("nothing to open")

// Func opens a URL or file path. The UI holds one so tests can swap it.
type Func func(target string) error

// Command returns the platform opener binary and its leading arguments.
func Command(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// Open launches the platform opener for target and returns once it has
// been handed off. Failures include the opener's stderr.
func Open(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}
	name, args := Command(runtime.GOOS)
	cmd := exec.Command(name, append(args, target)...)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, target, err, strings.TrimSpace(out.String()))
	}
	return nil
}
