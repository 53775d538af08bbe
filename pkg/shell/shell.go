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

// Package shell runs external commands and captures their output. The
// scheduler tools (sbatch, sacct) are invoked through this package.
package shell

import (
	"bytes"
	"os/exec"
	"strings"

	"slurm-toolkit/pkg/logging"
)

// Result holds the outcome of an executed command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Command is an external command prepared for execution.
type Command struct {
	name  string
	args  []string
	input string
}

// NewCommand prepares a command without running it.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// SetInput sets the data written to the command's stdin.
func (c *Command) SetInput(input string) {
	c.input = input
}

// Execute runs the command and blocks until it exits. A failure to start the
// command is reported as exit code -1 with the error text in Stderr.
func (c *Command) Execute() Result {
	logging.Debug("Executing: %s %s", c.name, strings.Join(c.args, " "))

	cmd := exec.Command(c.name, c.args...)
	if c.input != "" {
		cmd.Stdin = strings.NewReader(c.input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}
	return res
}

// ExecuteCommand runs a command with the given arguments and returns its result.
func ExecuteCommand(name string, args ...string) Result {
	return NewCommand(name, args...).Execute()
}
