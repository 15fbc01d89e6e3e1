package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
		warnOn  bool
	}{
		{level: "debug", debugOn: true, warnOn: true},
		{level: "info", debugOn: false, warnOn: true},
		{level: "error", debugOn: false, warnOn: false},
		{level: "bogus", debugOn: false, warnOn: true},
		{level: "", debugOn: false, warnOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(Config{Level: tt.level})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			core := logger.Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := core.Enabled(zapcore.WarnLevel); got != tt.warnOn {
				t.Errorf("warn enabled = %v, want %v", got, tt.warnOn)
			}
		})
	}
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirsize.log")
	if err := Init(Config{Level: "info", Format: "json", OutputPath: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { globalLogger = nil })

	L().Info("built tree", String("source", "input.txt"), Int("lines", 3))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{`"msg":"built tree"`, `"source":"input.txt"`, `"lines":3`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log output %q missing %s", data, want)
		}
	}
}

func TestLBeforeInit(t *testing.T) {
	globalLogger = nil
	if L() == nil {
		t.Fatal("L() must never return nil")
	}
	if err := Sync(); err != nil {
		t.Errorf("Sync before Init: %v", err)
	}
}
