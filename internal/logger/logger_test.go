package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	// MaxSize is in MB; 1 is the smallest lumberjack allows
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false, // Disable compression for easier testing
	}

	require.NoError(t, InitWithFileConfig("debug", cfg, false)) // No console output
	defer Sync()

	// Each entry is ~300 bytes, so 15000 entries comfortably exceed 1MB
	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d: %s", i, longMessage)
	}
	Sync()

	require.FileExists(t, logFile)

	files, err := os.ReadDir(tempDir)
	require.NoError(t, err)

	var rotated []string
	for _, f := range files {
		name := f.Name()
		if name != "test.log" && strings.HasPrefix(name, "test") && strings.Contains(name, ".log") {
			rotated = append(rotated, name)
		}
	}

	require.NotEmpty(t, rotated, "no rotated files found")
	for _, name := range rotated {
		// Rotated files look like test-YYYY-MM-DDTHH-MM-SS.SSS.log
		assert.Contains(t, name, "-20")
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			cfg := FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
			require.NoError(t, InitWithFileConfig(tt.level, cfg, false))

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)

			for _, exp := range tt.expected {
				assert.Contains(t, string(content), exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, string(content), exc)
			}
		})
	}
}

func TestUnknownLevel(t *testing.T) {
	assert.Error(t, InitWithFileConfig("verbose", FileConfig{}, false))
}

func TestNamedComponentAndFields(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	require.NoError(t, InitWithFileConfig("debug", FileConfig{Path: logFile, MaxSizeMB: 1}, false))

	Named("renderer").Info("buffers uploaded", zap.Int("vertices", 8), zap.Int("indices", 24))
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	for _, want := range []string{`"component":"renderer"`, `"vertices":8`, `"indices":24`, "logger_test.go"} {
		assert.Contains(t, string(content), want)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	assert.Equal(t, FileConfig{
		Path:       "/tmp/test.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}, DefaultFileConfig("/tmp/test.log"))
}
