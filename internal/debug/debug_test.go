package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog(t *testing.T) {
	type tc struct {
		writer bool
		format string
		args   []any
		want   string
	}

	tests := map[string]tc{
		"formats with timestamp": {
			writer: true,
			format: "focus %s -> %s",
			args:   []any{"a", "b"},
			want:   "[12:30:45.000] focus a -> b\n",
		},
		"disabled writes nothing": {
			writer: false,
			format: "ignored",
			want:   "",
		},
	}

	nowFunc = func() time.Time { return time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if tt.writer {
				SetOutput(&buf)
			} else {
				SetOutput(nil)
			}
			defer SetOutput(nil)

			Log(tt.format, tt.args...)
			if got := buf.String(); got != tt.want {
				t.Errorf("Log() wrote %q, want %q", got, tt.want)
			}
			if Enabled() != tt.writer {
				t.Errorf("Enabled() = %v, want %v", Enabled(), tt.writer)
			}
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gui.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hello %d", 42)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello 42") {
		t.Errorf("log file = %q, want it to contain %q", data, "hello 42")
	}
}
