package audio

import (
	"bytes"
	"sync"
	"testing"
)

func TestStopControlIdempotent(t *testing.T) {
	var buf bytes.Buffer
	stop := newStopControl(&buf)

	stop.requestStop()
	stop.requestStop()

	if got := buf.String(); got != "q" {
		t.Errorf("stdin received %q, want exactly one %q", got, "q")
	}
	if !stop.stopRequested() {
		t.Error("stopRequested() should be true after requestStop")
	}
}

func TestStopControlConcurrent(t *testing.T) {
	var buf safeBuffer
	stop := newStopControl(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop.requestStop()
		}()
	}
	wg.Wait()

	if got := buf.String(); got != "q" {
		t.Errorf("stdin received %q, want exactly one %q", got, "q")
	}
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCaptureExitOK(t *testing.T) {
	tests := []struct {
		name          string
		code          int
		stopRequested bool
		want          bool
	}{
		{"clean exit", 0, false, true},
		{"graceful stop code", 255, false, true},
		{"failure without stop", 1, false, false},
		{"any code after stop", 1, true, true},
		{"signal-style code after stop", 130, true, true},
		{"signal-style code without stop", 130, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := captureExitOK(tt.code, tt.stopRequested); got != tt.want {
				t.Errorf("captureExitOK(%d, %v) = %v, want %v", tt.code, tt.stopRequested, got, tt.want)
			}
		})
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"single", "single"},
		{"first\nsecond\n", "second"},
		{"progress\rprogress\nError opening device\n", "Error opening device"},
	}
	for _, tt := range tests {
		if got := lastLine(tt.in); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
