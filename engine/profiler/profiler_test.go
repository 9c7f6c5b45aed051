package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTickWaitsForInterval(t *testing.T) {
	captureLog(t)
	p := NewProfiler()
	p.SetInterval(time.Hour)

	for i := 0; i < 10; i++ {
		if p.Tick() {
			t.Fatalf("tick %d logged before the interval elapsed", i)
		}
	}
}

func TestTickLogsStepStats(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler()
	p.SetInterval(0)

	p.Observe(2 * time.Millisecond)
	p.Observe(6 * time.Millisecond)

	if !p.Tick() {
		t.Fatalf("zero-interval tick did not log")
	}
	line := buf.String()
	if !strings.Contains(line, "[Profiler]") {
		t.Fatalf("log line missing prefix: %q", line)
	}
	if !strings.Contains(line, "avg 4ms") || !strings.Contains(line, "max 6ms") {
		t.Fatalf("log line missing step stats: %q", line)
	}
}

func TestStepStatsResetAfterReport(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler()
	p.SetInterval(0)

	p.Observe(8 * time.Millisecond)
	p.Tick()

	buf.Reset()
	p.Observe(2 * time.Millisecond)
	p.Tick()
	if line := buf.String(); !strings.Contains(line, "max 2ms") {
		t.Fatalf("step max carried over: %q", line)
	}
}
