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

// Client defines the interface to the scheduler's command-line tools.
// Implementations submit a rendered script and query the accounting
// database for a submitted job's state.
type Client interface {
	// Submit hands the script at scriptPath to the scheduler and returns
	// the scheduler's raw confirmation output.
	Submit(scriptPath string) (string, error)

	// QueryState asks the scheduler's accounting database for the state
	// of the job with the given ID and returns the raw output.
	QueryState(jobID string) (string, error)
}
