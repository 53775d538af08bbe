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

// Package scheduler builds, submits, and tracks Slurm batch job scripts.
//
// A JobScript accumulates sbatch directives, job steps, inter-job
// dependencies, and environment modules, renders them into a batch script,
// submits the script through a Client, and interprets the job's reported
// state. Each JobScript is independent and single-threaded; callers polling
// several jobs concurrently must orchestrate that themselves.
package scheduler

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"slurm-toolkit/pkg/logging"
)

const (
	directivePrefix = "#SBATCH "
	runPrefix       = "srun "
	defaultShebang  = "#!/bin/bash"
)

// JobScript represents a single schedulable unit of work: a batch script
// assembled in memory, written to disk, and handed to the scheduler.
type JobScript struct {
	steps          []string
	directives     []Directive
	dependencies   []string
	dependencyMode string
	modules        []string
	shebang        string
	scriptPath     string
	jobID          string

	fs     afero.Fs
	client Client
}

// NewJobScript creates a job script with one initial step. The script file
// will be written to workDir joined with scriptName. Each entry of
// directives is classified through ParseDirective.
func NewJobScript(command, scriptName, workDir string, directives []string) (*JobScript, error) {
	if strings.TrimSpace(command) == "" {
		return nil, &ConfigurationError{Reason: "initial command must not be empty"}
	}
	if strings.TrimSpace(scriptName) == "" {
		return nil, &ConfigurationError{Reason: "script name must not be empty"}
	}

	js := &JobScript{
		steps:          []string{command},
		dependencyMode: "afterany",
		shebang:        defaultShebang,
		scriptPath:     workDir + "/" + scriptName,
		fs:             afero.NewOsFs(),
		client:         NewSlurmClient(),
	}
	for _, raw := range directives {
		if err := js.AddDirective(raw); err != nil {
			return nil, err
		}
	}
	return js, nil
}

// SetClient replaces the scheduler client. Used to point at non-default tool
// paths or to inject a fake in tests.
func (js *JobScript) SetClient(client Client) {
	js.client = client
}

// SetFs replaces the filesystem the script file is written to.
func (js *JobScript) SetFs(fs afero.Fs) {
	js.fs = fs
}

// ScriptPath returns the path the rendered script is written to.
func (js *JobScript) ScriptPath() string {
	return js.scriptPath
}

// JobID returns the scheduler-assigned job ID, or "" before submission.
func (js *JobScript) JobID() string {
	return js.jobID
}

// AddStep appends a job step. Steps run in insertion order, each launched
// through srun.
func (js *JobScript) AddStep(command string) {
	js.steps = append(js.steps, command)
}

// AddDirective classifies and appends one sbatch directive.
func (js *JobScript) AddDirective(raw string) error {
	d, err := ParseDirective(raw)
	if err != nil {
		return err
	}
	js.directives = append(js.directives, d)
	return nil
}

// AddDependency appends one upstream job ID this job waits on. Repeated IDs
// are preserved as given; the scheduler tolerates duplicates.
func (js *JobScript) AddDependency(jobID string) {
	js.dependencies = append(js.dependencies, jobID)
}

// AddDependencies appends a list of upstream job IDs.
func (js *JobScript) AddDependencies(jobIDs []string) {
	js.dependencies = append(js.dependencies, jobIDs...)
}

// SetDependencyMode sets the mode ("afterany", "afterok", ...) applied to
// all dependencies as one combined directive.
func (js *JobScript) SetDependencyMode(mode string) {
	js.dependencyMode = mode
}

// AddModule appends an environment module loaded before any step runs.
func (js *JobScript) AddModule(name string) {
	js.modules = append(js.modules, name)
}

// AddModules appends a list of environment modules.
func (js *JobScript) AddModules(names []string) {
	js.modules = append(js.modules, names...)
}

// SetShebang replaces the interpreter line (default "#!/bin/bash").
func (js *JobScript) SetShebang(shebang string) {
	js.shebang = shebang
}

// Render produces the script text from the current state. The layout is
// fixed: shebang, directives in insertion order, one combined dependency
// directive if any dependencies exist, module load lines, then srun step
// lines. Rendering is deterministic and never fails.
func (js *JobScript) Render() string {
	var b strings.Builder

	b.WriteString(js.shebang)
	b.WriteString("\n")

	for _, d := range js.directives {
		b.WriteString(directivePrefix)
		b.WriteString(d.String())
		b.WriteString("\n")
	}

	if len(js.dependencies) > 0 {
		b.WriteString(directivePrefix)
		b.WriteString("--dependency=")
		b.WriteString(js.dependencyMode)
		b.WriteString(":")
		b.WriteString(strings.Join(js.dependencies, ","))
		b.WriteString("\n")
	}

	for _, m := range js.modules {
		b.WriteString("module load ")
		b.WriteString(m)
		b.WriteString("\n")
	}

	for _, s := range js.steps {
		b.WriteString(runPrefix)
		b.WriteString(s)
		b.WriteString("\n")
	}

	return b.String()
}

// Write renders the script to its path and marks it executable (0755). An
// existing file at the path is overwritten.
func (js *JobScript) Write() error {
	if err := afero.WriteFile(js.fs, js.scriptPath, []byte(js.Render()), 0644); err != nil {
		return &FilesystemError{Op: "write", Path: js.scriptPath, Err: err}
	}
	if err := js.fs.Chmod(js.scriptPath, os.FileMode(0755)); err != nil {
		return &FilesystemError{Op: "chmod", Path: js.scriptPath, Err: err}
	}
	return nil
}

// Submit hands the script file to the scheduler and records the job ID from
// its confirmation output ("Submitted batch job <N>"). The script must have
// been written first.
func (js *JobScript) Submit() (string, error) {
	out, err := js.client.Submit(js.scriptPath)
	if err != nil {
		return "", err
	}

	fields := strings.Fields(out)
	if len(fields) < 4 {
		return "", &SubmissionParseError{Response: strings.TrimSpace(out)}
	}

	js.jobID = fields[3]
	logging.Info("Submitted batch job %s (%s)", js.jobID, js.scriptPath)
	return js.jobID, nil
}

// Run writes the script, submits it, and removes the script file afterward.
// The scheduler queues the script content at acceptance time, so removing the
// file immediately after submission is safe in practice. The job ID remains
// valid for state queries after the file is gone.
func (js *JobScript) Run() (string, error) {
	if err := js.Write(); err != nil {
		return "", err
	}

	jobID, err := js.Submit()
	if err != nil {
		return "", err
	}

	if err := js.fs.Remove(js.scriptPath); err != nil {
		return jobID, &FilesystemError{Op: "remove", Path: js.scriptPath, Err: err}
	}
	return jobID, nil
}

// State queries the scheduler's accounting database for the job's current
// state code. It returns the empty code without querying when the job was
// never submitted; that is an absent result, not an error.
func (js *JobScript) State() (StateCode, error) {
	if js.jobID == "" {
		return "", nil
	}
	return QueryState(js.client, js.jobID)
}

// QueryState queries the accounting database for an arbitrary job ID and
// extracts the state code from its pipe-delimited report.
func QueryState(client Client, jobID string) (StateCode, error) {
	out, err := client.QueryState(jobID)
	if err != nil {
		return "", &QueryError{JobID: jobID, Err: err}
	}

	fields := strings.Split(strings.TrimSpace(out), "|")
	if len(fields) < 2 {
		return "", &QueryError{JobID: jobID, Err: errors.Errorf("unexpected sacct output %q", strings.TrimSpace(out))}
	}
	return StateCode(fields[1]), nil
}

// IsFinished reports whether the scheduler has stopped actively running the
// job. A job that was never submitted is not finished. Success and failure
// are not distinguished.
func (js *JobScript) IsFinished() (bool, error) {
	state, err := js.State()
	if err != nil {
		return false, err
	}
	return state.Finished(), nil
}
