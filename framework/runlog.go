package framework

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const runLogTimestampFormat = "2006-01-02 15:04:05"
const runLogFileTimeFormat = "20060102_150405"

// RunLog writes timestamped progress lines to standard output and to an
// append-only log file created for this run. The file name embeds the run's
// start time so that successive runs never collide.
type RunLog struct {
	console io.Writer
	file    io.Writer
	closer  io.Closer
	path    string
}

// NewRunLog creates the reports directory if it does not exist and opens a
// new log file in it named after the given start time.
func NewRunLog(dir string, start time.Time) (*RunLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create reports directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("api_test_log_%s.txt", start.Format(runLogFileTimeFormat)))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %q: %w", path, err)
	}
	return &RunLog{console: os.Stdout, file: f, closer: f, path: path}, nil
}

// NewRunLogForWriters is a constructor for tests, writing to arbitrary
// destinations instead of stdout and a file.
func NewRunLogForWriters(console, file io.Writer) *RunLog {
	return &RunLog{console: console, file: file}
}

// Path returns the location of this run's log file.
func (l *RunLog) Path() string {
	return l.path
}

// Printf writes one timestamped line to both the console and the log file.
func (l *RunLog) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.Record(msg, msg)
}

// Record writes one timestamped line that may be rendered differently on the
// console (for instance with ANSI colors) than in the plain-text log file.
func (l *RunLog) Record(consoleMsg, fileMsg string) {
	ts := time.Now().Format(runLogTimestampFormat)
	fmt.Fprintf(l.console, "[%s] %s\n", ts, consoleMsg)
	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s\n", ts, fileMsg)
		if f, ok := l.file.(*os.File); ok {
			_ = f.Sync()
		}
	}
}

func (l *RunLog) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
