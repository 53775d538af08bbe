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

// StateCode is a raw job state reported by the scheduler's accounting
// database, e.g. "PENDING" or "COMPLETED".
type StateCode string

// Common Slurm job state codes. The accounting database may report others
// (e.g. NODE_FAIL, PREEMPTED); classification only distinguishes the two
// active states from everything else.
const (
	StatePending   StateCode = "PENDING"
	StateRunning   StateCode = "RUNNING"
	StateCompleted StateCode = "COMPLETED"
	StateFailed    StateCode = "FAILED"
	StateCancelled StateCode = "CANCELLED"
	StateTimeout   StateCode = "TIMEOUT"
)

// Finished reports whether the scheduler has stopped actively running the
// job. Any non-empty code other than PENDING and RUNNING counts as finished;
// success and failure are not distinguished. The empty code (job never
// submitted) is not finished.
func (s StateCode) Finished() bool {
	return s != "" && s != StatePending && s != StateRunning
}
