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

import "strings"

// joinForm records which of the two sbatch directive syntaxes a directive
// uses. The two forms are not interchangeable: "--mem=4g" and "-c 1" are
// consumed differently by the scheduler, so the form chosen at parse time
// must survive through rendering.
type joinForm int

const (
	spaceJoined joinForm = iota
	equalsJoined
)

// Directive is one scheduler directive line, e.g. "--mem=4g" or "-c 1",
// written to the script behind the #SBATCH prefix.
type Directive struct {
	tokens []string
	form   joinForm
}

// ParseDirective classifies a raw directive string. Inputs containing the
// long-flag marker "--" are split on whitespace and later re-joined with
// spaces; all other inputs are split on "=" and re-joined with "=".
func ParseDirective(raw string) (Directive, error) {
	if strings.TrimSpace(raw) == "" {
		return Directive{}, &ConfigurationError{Reason: "directive must not be empty"}
	}

	if strings.Contains(raw, "--") {
		return Directive{tokens: strings.Fields(raw), form: spaceJoined}, nil
	}
	return Directive{tokens: strings.Split(raw, "="), form: equalsJoined}, nil
}

// String renders the directive without the #SBATCH prefix, preserving the
// joining character it was parsed with.
func (d Directive) String() string {
	if d.form == spaceJoined {
		return strings.Join(d.tokens, " ")
	}
	return strings.Join(d.tokens, "=")
}
