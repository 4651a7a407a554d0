package fragments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ArgumentPlaceholder is replaced by the reference string in command arguments
const ArgumentPlaceholder = "{argument}"

// DefaultCommandTimeout bounds a command loader run when none is configured
const DefaultCommandTimeout = 2 * time.Minute

// CommandSpec describes an external program that prints a fragment to stdout
type CommandSpec struct {
	Command    string
	Args       []string
	WorkingDir string
	Timeout    time.Duration
}

// CommandLoader is a Loader backed by an external command
type CommandLoader struct {
	scheme string
	spec   CommandSpec
}

// NewCommandLoader creates a loader that runs spec for every Load call
func NewCommandLoader(scheme string, spec CommandSpec) (*CommandLoader, error) {
	if spec.Command == "" {
		return nil, fmt.Errorf("command is required for %s loader", scheme)
	}
	if spec.Timeout <= 0 {
		spec.Timeout = DefaultCommandTimeout
	}
	return &CommandLoader{scheme: scheme, spec: spec}, nil
}

// Load runs the command with the argument substituted and returns its stdout.
// When no argument contains the placeholder the argument is appended.
func (l *CommandLoader) Load(ctx context.Context, argument string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.spec.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, l.spec.Command, l.expandArgs(argument)...)
	if l.spec.WorkingDir != "" {
		cmd.Dir = l.spec.WorkingDir
	}

	// Children that inherit stdout must not hold Run open past the deadline
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Scheme:   l.scheme,
			Command:  l.spec.Command,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
		}
		var exitErr *exec.ExitError
		switch {
		case ctx.Err() != nil:
			cmdErr.Cause = ctx.Err()
		case errors.As(err, &exitErr):
			cmdErr.ExitCode = exitErr.ExitCode()
		default:
			cmdErr.Cause = err
		}
		return "", cmdErr
	}

	return stdout.String(), nil
}

func (l *CommandLoader) expandArgs(argument string) []string {
	args := make([]string, 0, len(l.spec.Args)+1)
	substituted := false
	for _, arg := range l.spec.Args {
		if strings.Contains(arg, ArgumentPlaceholder) {
			arg = strings.ReplaceAll(arg, ArgumentPlaceholder, argument)
			substituted = true
		}
		args = append(args, arg)
	}
	if !substituted {
		args = append(args, argument)
	}
	return args
}
