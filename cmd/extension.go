package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Environment passed to extensions, matching the configuration variables.
const (
	EnvTradesFile = "TJ_TRADES_FILE"
	EnvLogLevel   = "TJ_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external tj-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "tj-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("extension not found", "command", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// global flags are passed on as environment variables.
	cmd.Env = os.Environ()
	if *tradesFile != "" {
		cmd.Env = append(cmd.Env, EnvTradesFile+"="+*tradesFile)
	}
	if *Verbose {
		cmd.Env = append(cmd.Env, EnvLogLevel+"=debug")
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
