// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Executor)(nil)

// Executor implements ports.CommandRunner using os/exec.
type Executor struct {
	stderr io.Writer
}

// NewExecutor creates a new Executor that streams process stderr to os.Stderr
// unless the context carries a telemetry vertex.
func NewExecutor() *Executor {
	return NewExecutorWithWriter(os.Stderr)
}

// NewExecutorWithWriter creates a new Executor streaming process stderr to w.
func NewExecutorWithWriter(w io.Writer) *Executor {
	return &Executor{stderr: w}
}

// Run executes cmd. It merges environments with the following priority (low to high):
// 1. os.Environ() (System base)
// 2. cmd.Env (Host overrides)
//
// A PATH override is prepended to the system PATH. Standard output is captured;
// standard error is captured and streamed to the context vertex or the executor writer.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) ([]byte, []byte, error) {
	if cmd.Name == "" {
		return nil, nil, zerr.New("empty command")
	}

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	// Resolve the executable path using the new environment's PATH
	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) {
		if lp, err := lookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // executable comes from user settings

	// exec.CommandContext sets Args[0] to the executable path.
	// Keep the name as invoked.
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = cmdEnv

	progress := e.stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		progress = v.Stderr()
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(progress, &stderr)

	if err := c.Run(); err != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		runErr := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return stdout.Bytes(), stderr.Bytes(), zerr.With(runErr, "executable", cmd.Name)
	}

	return stdout.Bytes(), stderr.Bytes(), nil
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	// 1. Start with System Environment
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	// 2. Apply overrides (Prepend PATH)
	for k, v := range overrides {
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
				continue
			}
		}
		envMap[k] = v
	}

	// Convert to slice
	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
