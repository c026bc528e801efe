package testutils

import (
	"bytes"
	"log/slog"
	"sync"
)

// Logger is a debug level slog.Logger writing into memory.
type Logger struct {
	*slog.Logger

	buffer *SyncBuffer
}

// NewTestLogger returns a logger whose output can be inspected with [Logger.GetLogs].
func NewTestLogger() *Logger {
	buffer := &SyncBuffer{}

	return &Logger{
		Logger: slog.New(slog.NewTextHandler(buffer, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
		buffer: buffer,
	}
}

// GetLogs returns all log lines written so far.
func (l *Logger) GetLogs() string {
	return l.buffer.String()
}

// SyncBuffer is a bytes.Buffer safe for concurrent use.
type SyncBuffer struct {
	mu     sync.Mutex
	buffer bytes.Buffer
}

func (s *SyncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buffer.Write(p) //nolint:wrapcheck
}

func (s *SyncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buffer.String()
}
