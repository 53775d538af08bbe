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

package logging

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

func formatEntry(t *testing.T, level logrus.Level, message string) string {
	t.Helper()
	out, err := levelFormatter{}.Format(&logrus.Entry{Level: level, Message: message})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	return string(out)
}

func TestLevelFormatterPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		level logrus.Level
		want  string
	}{
		{level: logrus.InfoLevel, want: "INFO starting up\n"},
		{level: logrus.WarnLevel, want: "WARNING starting up\n"},
		{level: logrus.ErrorLevel, want: "ERROR starting up\n"},
		{level: logrus.DebugLevel, want: "DEBUG starting up\n"},
	}

	for _, tt := range tests {
		if got := formatEntry(t, tt.level, "starting up"); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelFormatterColorizesPrefix(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	got := formatEntry(t, logrus.InfoLevel, "starting up")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Format() = %q, want ANSI-colored level prefix", got)
	}
	if !strings.HasSuffix(got, " starting up\n") {
		t.Errorf("Format() = %q, want uncolored message text", got)
	}
}
