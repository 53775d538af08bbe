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

// Package logging provides the toolkit-wide logger. All packages log through
// the printf-style helpers here rather than using logrus directly, so the
// output format and verbosity are controlled in one place.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var levelColors = map[logrus.Level]*color.Color{
	logrus.DebugLevel: color.New(color.FgCyan),
	logrus.InfoLevel:  color.New(color.FgGreen),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.ErrorLevel: color.New(color.FgRed),
	logrus.FatalLevel: color.New(color.FgRed, color.Bold),
	logrus.PanicLevel: color.New(color.FgRed, color.Bold),
}

// levelFormatter renders "LEVEL message" lines with the level prefix
// colorized on terminals. Color output follows the package-level
// color.NoColor switch, set once at startup from the stderr tty check.
type levelFormatter struct{}

func (levelFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	prefix := strings.ToUpper(entry.Level.String())
	if c, ok := levelColors[entry.Level]; ok {
		prefix = c.Sprint(prefix)
	}
	return []byte(fmt.Sprintf("%s %s\n", prefix, entry.Message)), nil
}

var logger = newLogger()

func newLogger() *logrus.Logger {
	color.NoColor = !isatty.IsTerminal(os.Stderr.Fd())

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(levelFormatter{})
	return l
}

// SetVerbose enables debug-level output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Debug logs a debug message, shown only in verbose mode.
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatal logs an error message and exits with a non-zero status.
func Fatal(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
