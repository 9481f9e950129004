package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/L-JANUSZ/BackupBuffer/pkg/constants"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log levels, lowest first.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

const timestampLayout = "2006-01-02 15:04:05,000"

// Logger writes "<timestamp> - <LEVEL> - <message>" lines.
type Logger struct {
	logger *log.Logger
	closer io.Closer
	level  int
	now    func() time.Time
}

// NewLogger logs to w at level and above. If w is an io.Closer, Close closes it.
func NewLogger(w io.Writer, level int) *Logger {
	l := &Logger{
		logger: log.New(w, "", 0),
		level:  level,
		now:    time.Now,
	}
	if c, ok := w.(io.Closer); ok && w != os.Stderr && w != os.Stdout {
		l.closer = c
	}
	return l
}

// SetupLogger opens the append-mode log file in dir, rotated by lumberjack.
func SetupLogger(dir string) (*Logger, error) {
	path := filepath.Join(dir, constants.LogFile)

	// lumberjack opens lazily; fail here rather than on the first line.
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	file.Close()

	lumberjackLogger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSize,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAge,
		Compress:   true,
		LocalTime:  true,
	}
	return NewLogger(lumberjackLogger, LevelDebug), nil
}

// LogMessage records message if level passes the threshold.
func (l *Logger) LogMessage(level int, message string) {
	if level < l.level {
		return
	}
	levelStr := "DEBUG"
	switch level {
	case LevelInfo:
		levelStr = "INFO"
	case LevelWarn:
		levelStr = "WARNING"
	case LevelError:
		levelStr = "ERROR"
	}
	l.logger.Printf("%s - %s - %s", l.now().Format(timestampLayout), levelStr, message)
}

func (l *Logger) Debug(format string, args ...any) { l.LogMessage(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Info(format string, args ...any)  { l.LogMessage(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Warn(format string, args ...any)  { l.LogMessage(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logger) Error(format string, args ...any) { l.LogMessage(LevelError, fmt.Sprintf(format, args...)) }

// Close flushes and closes the underlying sink.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
