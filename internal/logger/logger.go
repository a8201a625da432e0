// Package logger provides the leveled logger used across mjunit.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pterm/pterm"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

type Logger struct {
	Writer io.Writer
	Level  LogLevel
}

var (
	logger atomic.Value

	// writeMutex syncs writes so concurrent goroutines don't interleave lines.
	writeMutex sync.Mutex
)

func init() {
	logger.Store(Logger{
		Writer: os.Stderr,
		Level:  LogLevelInfo,
	})
}

// ParseLevel converts a level name to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch name {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warning", "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "fatal":
		return LogLevelFatal, nil
	}
	return LogLevelInfo, fmt.Errorf("%q is not a valid log level", name)
}

// SetLevel changes the minimum level printed by the package-level logger.
// An invalid level name is itself fatal.
func SetLevel(name string) {
	if name == "" {
		return
	}

	level, err := ParseLevel(name)
	if err != nil {
		Fatalf("%v", err)
	}

	log := Get()
	log.Level = level
	logger.Store(log)
}

// SetOutput redirects the package-level logger, mainly for tests.
func SetOutput(w io.Writer) {
	log := Get()
	log.Writer = w
	logger.Store(log)
}

// Get returns the current package-level logger.
func Get() Logger {
	log, ok := logger.Load().(Logger)
	if !ok {
		panic("invalid logger")
	}
	return log
}

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	}
	return "Unknown"
}

// prefixStyle returns the style of the level prefix.
func (l LogLevel) prefixStyle() pterm.Style {
	switch l {
	case LogLevelDebug:
		return pterm.Style{pterm.FgBlack, pterm.BgGray}
	case LogLevelInfo:
		return pterm.Style{pterm.FgBlack, pterm.BgCyan}
	case LogLevelWarn:
		return pterm.Style{pterm.FgBlack, pterm.BgYellow}
	case LogLevelError, LogLevelFatal:
		return pterm.Style{pterm.FgBlack, pterm.BgLightRed}
	default:
		return pterm.Style{pterm.FgDefault, pterm.BgDefault}
	}
}

// messageStyle returns the style of the message body.
func (l LogLevel) messageStyle() pterm.Style {
	switch l {
	case LogLevelDebug:
		return pterm.Style{pterm.FgGray}
	case LogLevelInfo:
		return pterm.Style{pterm.FgLightCyan}
	case LogLevelWarn:
		return pterm.Style{pterm.FgYellow}
	case LogLevelError, LogLevelFatal:
		return pterm.Style{pterm.FgLightRed}
	default:
		return pterm.Style{pterm.FgDefault, pterm.BgDefault}
	}
}

// CanPrint checks if the logger prints messages of the given level.
func (l Logger) CanPrint(level LogLevel) bool {
	return l.Level <= level
}

func (l Logger) log(level LogLevel, msg string) {
	if !l.CanPrint(level) {
		return
	}

	line := pterm.Gray(time.Now().Format("15:04:05")) + " "
	line += level.prefixStyle().Sprintf(" %-5s ", level.String()) + " "
	line += level.messageStyle().Sprint(msg)

	writeMutex.Lock()
	defer writeMutex.Unlock()

	_, _ = l.Writer.Write([]byte(line + "\n"))
}

func Debugf(msg string, args ...any) {
	Get().log(LogLevelDebug, fmt.Sprintf(msg, args...))
}

func Infof(msg string, args ...any) {
	Get().log(LogLevelInfo, fmt.Sprintf(msg, args...))
}

func Warnf(msg string, args ...any) {
	Get().log(LogLevelWarn, fmt.Sprintf(msg, args...))
}

func Errorf(msg string, args ...any) {
	Get().log(LogLevelError, fmt.Sprintf(msg, args...))
}

func Fatalf(msg string, args ...any) {
	l := Get()
	l.log(LogLevelFatal, fmt.Sprintf(msg, args...))
	if l.CanPrint(LogLevelFatal) {
		os.Exit(1)
	}
}
