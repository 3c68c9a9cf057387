package shell_test

import (
	"testing"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/shell"
	"github.com/stretchr/testify/assert"
)

func activation() *activator.Activation {
	return &activator.Activation{
		Result: activator.Activated,
		EnvDir: "/p/.venv",
		BinDir: "/p/.venv/bin",
		Vars: []activator.EnvVar{
			{Key: "VIRTUAL_ENV", Value: "/p/.venv"},
			{Key: "PATH", Value: "/p/.venv/bin:/usr/bin"},
		},
	}
}

func TestActivate_Posix(t *testing.T) {
	out := shell.Activate(activation(), "zsh")

	assert.Contains(t, out, `export VIRTUAL_ENV="/p/.venv"`)
	assert.Contains(t, out, `export PATH="/p/.venv/bin:/usr/bin"`)
}

func TestActivate_Fish(t *testing.T) {
	out := shell.Activate(activation(), "fish")

	assert.Contains(t, out, `set -gx VIRTUAL_ENV "/p/.venv"`)
	assert.Contains(t, out, `set -gx PATH "/p/.venv/bin:/usr/bin"`)
}

func TestActivate_AlreadyActiveEmitsNothing(t *testing.T) {
	act := &activator.Activation{Result: activator.AlreadyActive, EnvDir: "/p/.venv"}

	assert.Equal(t, "", shell.Activate(act, "zsh"))
}

func TestDeactivate(t *testing.T) {
	assert.Contains(t, shell.Deactivate("bash"), "unset VIRTUAL_ENV")
	assert.Contains(t, shell.Deactivate("fish"), "set -e VIRTUAL_ENV")
}

func TestHookSnippet(t *testing.T) {
	assert.Contains(t, shell.HookSnippet("zsh"), "chpwd_functions")
	assert.Contains(t, shell.HookSnippet("bash"), "PROMPT_COMMAND")
	assert.Contains(t, shell.HookSnippet("fish"), "--on-variable PWD")
	assert.Equal(t, "", shell.HookSnippet("powershell"))
}
