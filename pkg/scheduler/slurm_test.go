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

package scheduler

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeFakeTool writes an executable shell script standing in for a
// scheduler binary.
func writeFakeTool(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell tools")
	}

	path := filepath.Join(t.TempDir(), name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake %s: %v", name, err)
	}
	return path
}

func TestSlurmClientSubmit(t *testing.T) {
	client := NewSlurmClient()
	client.SbatchPath = writeFakeTool(t, "sbatch", `echo "Submitted batch job 4242"`)

	out, err := client.Submit("/work/script.sh")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if strings.TrimSpace(out) != "Submitted batch job 4242" {
		t.Errorf("Submit() = %q, want sbatch's confirmation line", out)
	}
}

func TestSlurmClientSubmitFailure(t *testing.T) {
	client := NewSlurmClient()
	client.SbatchPath = writeFakeTool(t, "sbatch", `echo "sbatch: error: invalid script" >&2; exit 1`)

	if _, err := client.Submit("/work/script.sh"); err == nil {
		t.Fatal("Submit succeeded, want error for nonzero sbatch exit")
	}
}

func TestSlurmClientQueryState(t *testing.T) {
	client := NewSlurmClient()
	client.SacctPath = writeFakeTool(t, "sacct", `echo "$2|RUNNING||"`)

	out, err := client.QueryState("4242")
	if err != nil {
		t.Fatalf("QueryState failed: %v", err)
	}
	if strings.TrimSpace(out) != "4242|RUNNING||" {
		t.Errorf("QueryState() = %q, want the sacct report line", out)
	}
}

func TestSlurmClientQueryStateFailure(t *testing.T) {
	client := NewSlurmClient()
	client.SacctPath = writeFakeTool(t, "sacct", `exit 1`)

	if _, err := client.QueryState("4242"); err == nil {
		t.Fatal("QueryState succeeded, want error for nonzero sacct exit")
	}
}
