package logger

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func resetLogger() {
	global = nil
	once = sync.Once{}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"json info", "info", "json", zapcore.InfoLevel, false},
		{"console debug", "debug", "console", zapcore.DebugLevel, false},
		{"json warn", "warn", "json", zapcore.WarnLevel, false},
		{"invalid level", "loud", "json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogger()
			err := Init(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("Init(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
				return
			}
			if !tt.wantErr && GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	resetLogger()
	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	tests := []struct {
		level     string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"bogus", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestL_PanicsWithoutInit(t *testing.T) {
	resetLogger()

	defer func() {
		if r := recover(); r == nil {
			t.Error("L() should panic without Init()")
		}
	}()

	L()
}

func TestFromContext(t *testing.T) {
	resetLogger()
	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext() without scoped logger returned nil")
	}

	ctx := WithContext(context.Background(), zap.String("request_id", "req-1"))
	scoped := FromContext(ctx)
	if scoped == nil {
		t.Fatal("FromContext() returned nil")
	}
	if scoped == FromContext(context.Background()) {
		t.Error("FromContext() did not return the scoped logger")
	}

	// Nested scopes keep working.
	nested := WithContext(ctx, zap.String("operator", "alice"))
	if FromContext(nested) == scoped {
		t.Error("nested WithContext() reused the parent logger")
	}
}

func TestLevelHandler(t *testing.T) {
	resetLogger()
	if err := Init("warn", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	h := LevelHandler()
	if h.Level() != zapcore.WarnLevel {
		t.Errorf("LevelHandler().Level() = %v, want WarnLevel", h.Level())
	}
}

func TestSync(t *testing.T) {
	resetLogger()
	if err := Sync(); err != nil {
		t.Errorf("Sync() on nil logger error = %v", err)
	}

	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	// stderr sync may fail under test runners.
	_ = Sync()
}
