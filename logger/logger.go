package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

var (
	// InfoLogger writes debug, info and warning messages.
	InfoLogger *logrus.Logger
	// ErrorLogger writes errors.
	ErrorLogger *logrus.Logger
)

type LogConfig struct {
	ErrorLogPath string
	InfoLogPath  string
	LogLevel     string
}

// CustomFormatter prints "[time] [LEVL] (file:func:line) message".
type CustomFormatter struct {
	TimestampFormat string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	return []byte(fmt.Sprintf("[%s] [%s] (%s) %s\n", timestamp, level, getCaller(), entry.Message)), nil
}

// getCaller skips logrus and this package to find the real call site.
func getCaller() string {
	for i := 2; i < 20; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.Contains(file, "sirupsen/logrus") || strings.HasSuffix(file, "logger/logger.go") {
			continue
		}
		funcName := runtime.FuncForPC(pc).Name()
		if idx := strings.LastIndex(funcName, "/"); idx >= 0 {
			funcName = funcName[idx+1:]
		}
		return fmt.Sprintf("%s:%s:%d", filepath.Base(file), funcName, line)
	}
	return "unknown:unknown:0"
}

func parseLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// InitLogger sets up both loggers. Info output goes to stderr so it does not
// interleave with the interactive menu on stdout; a log path tees it to a file.
func InitLogger(config LogConfig) error {
	formatter := &CustomFormatter{TimestampFormat: "15:04:05 MST 2006/01/02"}
	level := parseLogLevel(config.LogLevel)

	info := logrus.New()
	info.SetFormatter(formatter)
	info.SetLevel(level)

	errLog := logrus.New()
	errLog.SetFormatter(formatter)
	errLog.SetLevel(level)

	infoOut, err := output(os.Stderr, config.InfoLogPath)
	if err != nil {
		return err
	}
	errOut, err := output(os.Stderr, config.ErrorLogPath)
	if err != nil {
		return err
	}
	info.SetOutput(infoOut)
	errLog.SetOutput(errOut)

	InfoLogger = info
	ErrorLogger = errLog
	return nil
}

// SetOutput points both loggers at w. Tests use it to capture or silence logs.
func SetOutput(w io.Writer) {
	if InfoLogger == nil || ErrorLogger == nil {
		_ = InitLogger(LogConfig{})
	}
	InfoLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}

func output(def io.Writer, path string) (io.Writer, error) {
	if path == "" {
		return def, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Annotatef(err, "create log dir for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Annotatef(err, "open log file %s", path)
	}
	return io.MultiWriter(def, f), nil
}

func Debugf(format string, args ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Infof(format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Warnf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Errorf(format, args...)
	}
}
