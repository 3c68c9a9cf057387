// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunWithEnv executes an external command with additional environment variables
	// merged on top of the current process environment.
	RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error)

	// RunInteractiveWithEnv executes an external command with stdio attached to
	// the current process, with additional environment variables merged on top
	// of the current process environment.
	RunInteractiveWithEnv(ctx context.Context, env map[string]string, name string, args ...string) error
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// RunWithEnv executes the command with additional environment variables.
// The provided env map is merged on top of the current process environment.
func (c *RealCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	return cmd.CombinedOutput()
}

// RunInteractiveWithEnv executes the command with stdin/stdout/stderr passed
// through, so the child owns the terminal for its lifetime.
func (c *RealCommander) RunInteractiveWithEnv(ctx context.Context, env map[string]string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// mapToEnvSlice converts a map of environment variables to a slice of "KEY=VALUE" strings.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
