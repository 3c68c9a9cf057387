// Package shell renders activation results as shell code for the calling
// shell to eval. It also generates shell hook snippets (chpwd for Zsh,
// PROMPT_COMMAND for Bash, --on-variable for Fish) that call venvx activate
// on directory change.
package shell
