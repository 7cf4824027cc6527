package arpscan

import (
	"fmt"
	"strings"
	"sync"
)

// logSink captures log lines emitted through an injected logger so tests can
// assert on warning side effects.
type logSink struct {
	mu    sync.Mutex
	lines []string
}

func (w *logSink) record(level, format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, level+" "+fmt.Sprintf(format, args...))
}

func (w *logSink) Infof(format string, args ...interface{}) {
	w.record("INF", format, args...)
}

func (w *logSink) Warningf(format string, args ...interface{}) {
	w.record("WRN", format, args...)
}

func (w *logSink) Errorf(format string, args ...interface{}) {
	w.record("ERR", format, args...)
}

func (w *logSink) Debugf(format string, args ...interface{}) {
	w.record("DBG", format, args...)
}

func (w *logSink) contains(substr string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, line := range w.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func newTestScanner(options ...Option) (*Scanner, *logSink) {
	sink := &logSink{}
	return NewScanner(append(options, WithLogger(sink))...), sink
}
