// Command hjarta-comment boots the comment bundle configuration and either
// prints the compiled container or serves it over HTTP.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitGenericError = 1
	ExitConfigError  = 2
)

// CLIError carries the exit code for a failed command.
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for e.
func (e *CLIError) ExitCode() int {
	return e.Code
}

func newConfigError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitConfigError, Message: message, Cause: cause}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		_, _ = fmt.Fprintf(stderr, "hjarta-comment: %s\n", cliErr.Message)
		if cliErr.Cause != nil {
			_, _ = fmt.Fprintf(stderr, "  Cause: %v\n", cliErr.Cause)
		}

		return cliErr.ExitCode()
	}

	_, _ = fmt.Fprintf(stderr, "hjarta-comment: %v\n", err)

	return ExitGenericError
}
