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
	"strings"

	"github.com/pkg/errors"

	"slurm-toolkit/pkg/shell"
)

// SlurmClient implements Client by shelling out to the Slurm command-line
// tools. Every call blocks until the external process exits.
type SlurmClient struct {
	SbatchPath string
	SacctPath  string
}

// NewSlurmClient returns a client using sbatch and sacct from PATH.
func NewSlurmClient() *SlurmClient {
	return &SlurmClient{SbatchPath: "sbatch", SacctPath: "sacct"}
}

// Submit submits the script via sbatch and returns sbatch's stdout.
func (c *SlurmClient) Submit(scriptPath string) (string, error) {
	res := shell.ExecuteCommand(c.SbatchPath, scriptPath)
	if res.ExitCode != 0 {
		return "", errors.Errorf("sbatch failed with exit code %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return res.Stdout, nil
}

// QueryState queries the accounting database via sacct. The flags request a
// brief, parsable, headerless report of the job allocation only, one line of
// pipe-delimited fields.
func (c *SlurmClient) QueryState(jobID string) (string, error) {
	res := shell.ExecuteCommand(c.SacctPath, "-j", jobID, "-b", "-n", "-p", "-X")
	if res.ExitCode != 0 {
		return "", errors.Errorf("sacct failed with exit code %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return res.Stdout, nil
}
