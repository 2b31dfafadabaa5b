/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging provides the zap-backed logr setup shared by the planner
// CLI and test suites.
package logging

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logger.V(...). INFO is the default level;
// DEBUG and TRACE are progressively chattier.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// NewLogger creates a production logr.Logger writing JSON to stderr.
// verbosity selects the highest V level that will be emitted.
func NewLogger(verbosity int) logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	// logr V levels map to negative zap levels.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than failing the process
		// before it can report anything.
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// NewTestLogger creates a development-mode logger at full verbosity for use
// in test suites.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}
