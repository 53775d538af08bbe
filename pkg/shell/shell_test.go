// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shell

import (
	"runtime"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell tools")
	}
}

func TestExecuteCommandCapturesStdout(t *testing.T) {
	skipOnWindows(t)

	res := ExecuteCommand("sh", "-c", "printf 'hello'")
	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0 (stderr: %s)", res.ExitCode, res.Stderr)
	}
	if res.Stdout != "hello" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello")
	}
}

func TestExecuteCommandCapturesStderrAndExitCode(t *testing.T) {
	skipOnWindows(t)

	res := ExecuteCommand("sh", "-c", "printf 'oops' >&2; exit 3")
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Stderr != "oops" {
		t.Errorf("Stderr = %q, want %q", res.Stderr, "oops")
	}
}

func TestExecuteCommandMissingBinary(t *testing.T) {
	res := ExecuteCommand("definitely-not-a-real-binary-xyz")
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 for a missing binary", res.ExitCode)
	}
	if res.Stderr == "" {
		t.Errorf("Stderr empty for a missing binary, want error text")
	}
}

func TestCommandWithInput(t *testing.T) {
	skipOnWindows(t)

	cmd := NewCommand("sh", "-c", "cat")
	cmd.SetInput("piped input")
	res := cmd.Execute()
	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0 (stderr: %s)", res.ExitCode, res.Stderr)
	}
	if res.Stdout != "piped input" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "piped input")
	}
}
