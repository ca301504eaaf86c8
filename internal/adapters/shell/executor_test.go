package shell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/shell"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_CapturesOutput(t *testing.T) {
	var progress bytes.Buffer
	executor := shell.NewExecutorWithWriter(&progress)

	stdout, stderr, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", `echo '{"graph": {}}'; echo "Computing dependency graph" >&2`},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, "{\"graph\": {}}\n", string(stdout))
	assert.Equal(t, "Computing dependency graph\n", string(stderr))
	assert.Equal(t, "Computing dependency graph\n", progress.String())
}

func TestExecutor_Run_EnvironmentVariables(t *testing.T) {
	executor := shell.NewExecutorWithWriter(io.Discard)

	stdout, _, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $CONAN_HOME"},
		Env:  map[string]string{"CONAN_HOME": "/tmp/conan-home"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/conan-home\n", string(stdout))
}

func TestExecutor_Run_PathIsPrepended(t *testing.T) {
	executor := shell.NewExecutorWithWriter(io.Discard)
	binDir := t.TempDir()

	stdout, _, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $PATH"},
		Env:  map[string]string{"PATH": binDir},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(stdout), binDir+":"), "got %q", stdout)
}

func TestExecutor_Run_InvalidCommand(t *testing.T) {
	executor := shell.NewExecutorWithWriter(io.Discard)

	_, _, err := executor.Run(context.Background(), domain.Command{Name: "nonexistent-command-xyz123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestExecutor_Run_CommandFailure(t *testing.T) {
	executor := shell.NewExecutorWithWriter(io.Discard)

	_, stderr, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo 'ERROR: Package not resolved' >&2; exit 42"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Equal(t, "ERROR: Package not resolved\n", string(stderr))
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutorWithWriter(io.Discard)

	_, _, err := executor.Run(context.Background(), domain.Command{})
	require.Error(t, err)
}

func TestExecutor_Run_AbsolutePath(t *testing.T) {
	executor := shell.NewExecutorWithWriter(io.Discard)

	stdout, _, err := executor.Run(context.Background(), domain.Command{
		Name: "/bin/sh",
		Args: []string{"-c", "echo test"},
	})
	require.NoError(t, err)
	assert.Equal(t, "test\n", string(stdout))
}

func TestExecutor_Run_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)

	var stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	var fallback bytes.Buffer
	executor := shell.NewExecutorWithWriter(&fallback)

	// Inject Vertex into context
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	stdout, _, err := executor.Run(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello to stdout; echo hello to stderr >&2"},
	})
	require.NoError(t, err)

	assert.Contains(t, string(stdout), "hello to stdout")
	assert.Contains(t, stderrBuf.String(), "hello to stderr")
	assert.Empty(t, fallback.String())
}
