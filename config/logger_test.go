package config

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{LoggingConfig{Level: "loud"}, zapcore.InfoLevel},
		{LoggingConfig{}, zapcore.InfoLevel},
	}
	for _, tc := range cases {
		log, err := NewLogger(tc.cfg)
		if err != nil {
			t.Fatalf("%+v: %v", tc.cfg, err)
		}
		if !log.Core().Enabled(tc.want) {
			t.Errorf("%+v: level %v disabled", tc.cfg, tc.want)
		}
		if tc.want > zapcore.DebugLevel && log.Core().Enabled(tc.want-1) {
			t.Errorf("%+v: level %v enabled", tc.cfg, tc.want-1)
		}
	}
}
