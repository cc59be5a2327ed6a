package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"slices"
	"strconv"
)

// Extensions are executables named jnl-<subcommand> found in PATH. jnl runs
// them for the subcommands it does not know, and passes its global flags
// through the environment.
const (
	EnvCurrency = "JNL_CURRENCY"
	EnvVerbose  = "JNL_VERBOSE"

	extensionPrefix = "jnl-"
)

// RunExtension runs the extension implementing subcommand with args, on the
// standard streams. It reports whether an extension was found, and its exit
// code.
func RunExtension(subcommand string, args []string) (found bool, code int) {
	path, ok := findExtension(subcommand)
	if !ok {
		return false, 0
	}
	c := exec.Command(path, args...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	c.Env = extensionEnv(os.Environ())
	return true, exitCode(subcommand, c.Run())
}

// findExtension returns the path of the executable implementing subcommand.
func findExtension(subcommand string) (string, bool) {
	path, err := exec.LookPath(extensionPrefix + subcommand)
	if err != nil {
		if *Verbose {
			log.Printf("no extension for %q: %v", subcommand, err)
		}
		return "", false
	}
	return path, true
}

// extensionEnv returns env followed by the global flags.
func extensionEnv(env []string) []string {
	return append(slices.Clip(env),
		EnvCurrency+"="+*defaultCurrency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)
}

// exitCode returns the exit code of an extension run that ended with err.
// An extension that could not run is reported and exits with 1.
func exitCode(subcommand string, err error) int {
	if err == nil {
		return 0
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "Error: cannot run extension %q: %v\n", extensionPrefix+subcommand, err)
	return 1
}
