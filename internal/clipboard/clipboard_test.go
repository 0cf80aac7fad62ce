package clipboard

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_PerPlatform(t *testing.T) {
	name, args := command("darwin")
	assert.Equal(t, "pbcopy", name)
	assert.Empty(t, args)

	name, _ = command("windows")
	assert.Equal(t, "clip", name)

	name, _ = command("linux")
	assert.Contains(t, []string{"wl-copy", "xclip"}, name)
}

func TestWrite_RunsHelperWithStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub helper relies on cat")
	}

	var gotName string
	execCommandContext = func(ctx context.Context, name string, _ ...string) *exec.Cmd {
		gotName = name
		// cat consumes stdin and exits 0, standing in for the real helper.
		return exec.CommandContext(ctx, "cat")
	}
	t.Cleanup(func() { execCommandContext = exec.CommandContext })

	require.NoError(t, Write(context.Background(), "https://example.com"))
	assert.NotEmpty(t, gotName)
}

func TestWrite_HelperFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub helper relies on false")
	}

	execCommandContext = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { execCommandContext = exec.CommandContext })

	assert.Error(t, Write(context.Background(), "x"))
}
