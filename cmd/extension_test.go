package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// jnl-hello prints the environment it receives.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "jnl-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write jnl-hello source: %v", err)
	}
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile jnl-hello: %v", err)
	}

	jnlBinaryPath := filepath.Join(tempDir, "jnl")
	cmd = exec.Command("go", "build", "-o", jnlBinaryPath, "../jnl")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile jnl binary: %v", err)
	}

	jnlCmd := exec.Command(jnlBinaryPath, "-currency", "EUR", "-v", "hello", "world")
	jnlCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	jnlCmd.Stdout = &stdout
	jnlCmd.Stderr = &stderr
	if err := jnlCmd.Run(); err != nil {
		t.Fatalf("jnl command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{EnvCurrency + "=EUR", EnvVerbose + "=true", "args=[world]"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestExtensionEnv(t *testing.T) {
	oldCurrency, oldVerbose := *defaultCurrency, *Verbose
	*defaultCurrency, *Verbose = "EUR", true
	defer func() { *defaultCurrency, *Verbose = oldCurrency, oldVerbose }()

	base := make([]string, 1, 4)
	base[0] = "HOME=/home/jnl"
	got := extensionEnv(base)

	want := []string{"HOME=/home/jnl", EnvCurrency + "=EUR", EnvVerbose + "=true"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extensionEnv() mismatch (-want +got):\n%s", diff)
	}
	if extra := base[:2][1]; extra != "" {
		t.Errorf("extensionEnv() wrote into the caller's array: %q", extra)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode("hello", nil); got != 0 {
		t.Errorf("exitCode(nil) = %d, want 0", got)
	}
	if got := exitCode("hello", errors.New("cannot start")); got != 1 {
		t.Errorf("exitCode(start error) = %d, want 1", got)
	}

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no sh in PATH")
	}
	if got := exitCode("hello", exec.Command(sh, "-c", "exit 3").Run()); got != 3 {
		t.Errorf("exitCode(exit 3) = %d, want 3", got)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("hello", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
