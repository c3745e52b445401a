// Package exec runs local commands with captured output.
package exec

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pidplot/pidplot/internal/errors"
)

// Result holds the outcome of a local command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes a command locally with the given argv, capturing stdout and
// stderr separately. A non-zero exit from the command is reported through
// Result.ExitCode, not as an error; err is reserved for failures to start
// the command at all (e.g. binary not found).
func Run(ctx context.Context, name string, args ...string) (*Result, error) {
	command := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	runErr := command.Run()
	if runErr != nil {
		// Exit error means the command ran but returned non-zero.
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return &Result{
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		// Actual execution failure
		return nil, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run '"+name+"'",
			"Make sure the command exists and is executable.")
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}, nil
}
