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
	"errors"
	"testing"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "Long flag with equals value",
			raw:  "--mem=4g",
			want: "--mem=4g",
		},
		{
			name: "Long flag with space-separated value",
			raw:  "--partition long",
			want: "--partition long",
		},
		{
			name: "Short flag with space-separated value",
			raw:  "-c 1",
			want: "-c 1",
		},
		{
			name: "Bare key=value",
			raw:  "time=20:00",
			want: "time=20:00",
		},
		{
			name: "Long flag with multiple tokens",
			raw:  "--gres gpu 2",
			want: "--gres gpu 2",
		},
		{
			name: "Long flag with extra whitespace collapses",
			raw:  "--partition   long",
			want: "--partition long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDirective(tt.raw)
			if err != nil {
				t.Fatalf("ParseDirective(%q) failed: %v", tt.raw, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("ParseDirective(%q).String() = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDirectiveEmpty(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		_, err := ParseDirective(raw)
		if err == nil {
			t.Fatalf("ParseDirective(%q) succeeded, want error", raw)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ParseDirective(%q) error = %T, want *ConfigurationError", raw, err)
		}
	}
}
