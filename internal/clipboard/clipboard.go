// Package clipboard writes text to the system clipboard via the platform's
// clipboard helper (pbcopy, clip, wl-copy, xclip).
package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var execCommandContext = exec.CommandContext

// Write puts text on the system clipboard.
func Write(ctx context.Context, text string) error {
	name, args := command(runtime.GOOS)
	cmd := execCommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %s: %w", name, err)
	}
	return nil
}

func command(goos string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	default:
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return "wl-copy", nil
		}
		return "xclip", []string{"-selection", "clipboard"}
	}
}
