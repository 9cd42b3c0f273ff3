// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for level ("debug", "info", "warn" or "error").
// Debug uses zap's development config; every other level uses the
// production config at that level. Unknown levels fall back to info.
//
// format picks the encoder: "json" or "console". Empty keeps the
// config's default.
func New(level, format string) (*zap.Logger, error) {
	var cfg zap.Config

	switch strings.ToLower(level) {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	case "warn":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	switch format {
	case "":
	case "json", "console":
		cfg.Encoding = format
		if format == "console" {
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return logger, nil
}
