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

import "fmt"

// ConfigurationError reports invalid job script configuration, such as an
// empty initial command or a malformed directive.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid job script configuration: " + e.Reason
}

// SubmissionParseError reports an sbatch response that does not match the
// expected "Submitted batch job <N>" layout. No job ID is recoverable.
type SubmissionParseError struct {
	Response string
}

func (e *SubmissionParseError) Error() string {
	return fmt.Sprintf("unexpected sbatch response %q: cannot extract job ID", e.Response)
}

// QueryError reports a failed or unparseable accounting query.
type QueryError struct {
	JobID string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query state of job %s: %v", e.JobID, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// FilesystemError reports a failed script file operation.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s script %q: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
