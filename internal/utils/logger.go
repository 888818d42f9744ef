package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	RawBodyLog  bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return newLogger(parseLogLevel(level), rawBodyLog, os.Stdout, os.Stderr)
}

func NewDiscardLogger() *Logger {
	return newLogger(LevelInfo, false, io.Discard, io.Discard)
}

func newLogger(level LogLevel, rawBodyLog bool, out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile

	return &Logger{
		level:       level,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		RawBodyLog:  rawBodyLog,
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.output(l.infoLogger, reqID, format, v...)
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.output(l.errorLogger, reqID, format, v...)
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.output(l.debugLogger, reqID, format, v...)
}

// calldepth 3 points Lshortfile at the caller of Info/Error/Debug.
func (l *Logger) output(logger *log.Logger, reqID *string, format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	if reqID != nil && *reqID != "" {
		msg = "[" + *reqID + "] " + msg
	}
	_ = logger.Output(3, msg)
}
