// Package activator implements the idempotent environment activation routine
// shared by install and run. It locates the project's virtual environment,
// compares it against the VIRTUAL_ENV marker of the calling process, and
// applies activation mutations only when the environment is not already
// active. State is threaded through an Env abstraction instead of a global
// so the routine stays testable in isolation.
package activator
