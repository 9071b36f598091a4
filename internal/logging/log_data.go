package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData accumulates timings and fields across one request so they come
// out as a single structured log line.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  map[string]any
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(map[string]any),
		logger:  logger,
	}
}

// AddTiming starts a timer under the given name. The returned func stops
// it and records the elapsed milliseconds.
func (l *LogData) AddTiming(name string) func() {
	start := time.Now()

	return func() {
		elapsed := time.Since(start).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timings[name] = elapsed
	}
}

// AddToExistingTiming accumulates onto a named timer instead of replacing
// it, for work that runs in several bursts.
func (l *LogData) AddToExistingTiming(name string) func() {
	start := time.Now()

	return func() {
		elapsed := time.Since(start).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timings[name] += elapsed
	}
}

func (l *LogData) AddData(key string, value any) {
	l.fields[key] = value
}

// Log builds an entry carrying every collected field and timing.
func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	for key, value := range l.fields {
		entry = entry.WithField(key, value)
	}
	for key, value := range l.timings {
		entry = entry.WithField(key, value)
	}

	return entry
}
