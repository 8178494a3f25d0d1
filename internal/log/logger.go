package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	logJSON bool
	logText bool
}

func New(logFilePath string, logJSON, logText bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &Logger{
		console: os.Stdout,
		file:    file,
		logJSON: logJSON,
		logText: logText,
	}, nil
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type LogEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	Source    string            `json:"source,omitempty"`
	Dest      string            `json:"dest,omitempty"`
	Kind      types.MediaKind   `json:"kind,omitempty"`
	Action    types.PlaceAction `json:"action,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (l *Logger) LogTask(task types.PlaceTask) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   fmt.Sprintf("%s: %s -> %s", task.Action, task.Source.Name, task.DestPath),
		Source:    task.Source.Path,
		Dest:      task.DestPath,
		Kind:      task.Kind,
		Action:    task.Action,
	}

	if task.Error != "" {
		entry.Level = "ERROR"
		entry.Error = task.Error
	}

	l.writeEntry(entry)
}

func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   msg,
	}
	l.writeEntry(entry)
}

func (l *Logger) Error(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "ERROR",
		Message:   msg,
		Error:     err.Error(),
	}
	l.writeEntry(entry)
}

func (l *Logger) writeEntry(entry LogEntry) {
	if l.logJSON && l.file != nil {
		data, _ := json.Marshal(entry)
		l.file.Write(data)
		l.file.Write([]byte("\n"))
	}

	if l.logText && l.file != nil {
		line := fmt.Sprintf("[%s] %s %s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Level,
			entry.Message,
		)
		if entry.Error != "" {
			line = fmt.Sprintf("[%s] %s %s - Error: %s\n",
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				entry.Level,
				entry.Message,
				entry.Error,
			)
		}
		l.file.WriteString(line)
	}
}

func (l *Logger) Summary(summary types.RunSummary) {
	fmt.Fprintln(l.console, "\n=== MediaSort Summary ===")
	fmt.Fprintf(l.console, "Total files:    %d\n", summary.TotalFiles)
	fmt.Fprintf(l.console, "Images:         %d\n", summary.TotalImages)
	fmt.Fprintf(l.console, "Videos:         %d\n", summary.TotalVideos)
	fmt.Fprintf(l.console, "Unknown:        %d\n", summary.TotalUnknown)
	fmt.Fprintf(l.console, "Renamed:        %d\n", summary.Renamed)
	fmt.Fprintf(l.console, "Skipped:        %d\n", summary.Skipped)
	fmt.Fprintf(l.console, "Exceptions:     %d\n", summary.Exceptions)
	fmt.Fprintf(l.console, "Duration:       %s\n", summary.Duration.Round(time.Second))
	if summary.BytesPlaced > 0 {
		fmt.Fprintf(l.console, "Bytes placed:   %.2f MB\n", float64(summary.BytesPlaced)/1024/1024)
	}
	fmt.Fprintln(l.console, "=========================")
}
