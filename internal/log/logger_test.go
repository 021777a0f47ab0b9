package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func resetLogger() {
	SetVerbose(false)
	SetForceStderr(false)
	mu.Lock()
	stdout = os.Stdout
	stderr = os.Stderr
	mu.Unlock()
}

func TestDebugfSuppressedByDefault(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	SetVerbose(true)
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[DBG]") {
		t.Errorf("expected [DBG] prefix, got %q", buf.String())
	}
}

func TestLevelPrefixes(t *testing.T) {
	defer resetLogger()

	tests := []struct {
		name   string
		logFn  func(string, ...interface{})
		prefix string
	}{
		{"info", Infof, "[INF]"},
		{"warn", Warnf, "[WRN]"},
		{"error", Errorf, "[ERR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)

			tt.logFn("message")
			if !strings.Contains(buf.String(), tt.prefix) {
				t.Errorf("expected prefix %q in %q", tt.prefix, buf.String())
			}
		})
	}
}

func TestIsVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected IsVerbose() to be true")
	}
	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected IsVerbose() to be false")
	}
}
