package log

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/tevino/abool"
)

// Severity describes a log level.
type Severity uint32

// Message severities.
const (
	TraceLevel    Severity = 1
	DebugLevel    Severity = 2
	InfoLevel     Severity = 3
	WarningLevel  Severity = 4
	ErrorLevel    Severity = 5
	CriticalLevel Severity = 6
)

type logLine struct {
	msg       string
	level     Severity
	timestamp time.Time
	file      string
	line      int
}

var (
	logBuffer             = make(chan *logLine, 1024)
	forceEmptyingOfBuffer = make(chan struct{}, 4)

	logLevelInt = uint32(InfoLevel)
	logLevel    = &logLevelInt

	logsWaiting     = make(chan struct{}, 1)
	logsWaitingFlag = abool.NewBool(false)

	started       = abool.NewBool(false)
	startedSignal = make(chan struct{})

	shutdownFlag   = abool.NewBool(false)
	shutdownSignal = make(chan struct{})
	writerStopped  = make(chan struct{})

	// counters exposed for diagnostics
	warningLogLines  uint64
	errorLogLines    uint64
	criticalLogLines uint64
)

// SetLogLevel sets the log level.
func SetLogLevel(level Severity) {
	atomic.StoreUint32(logLevel, uint32(level))
}

// GetLogLevel returns the current log level.
func GetLogLevel() Severity {
	return Severity(atomic.LoadUint32(logLevel))
}

// ParseLevel returns the level severity of a log level name. It returns 0 on failure.
func ParseLevel(level string) Severity {
	switch strings.ToLower(level) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warning":
		return WarningLevel
	case "error":
		return ErrorLevel
	case "critical":
		return CriticalLevel
	}
	return 0
}

// Start starts the logging system. Must be called in order to see logs.
func Start() (err error) {
	if !started.SetToIf(false, true) {
		return nil
	}

	go writer()
	close(startedSignal)

	return nil
}

// Shutdown writes all pending log lines and stops the logging system.
func Shutdown() {
	if shutdownFlag.SetToIf(false, true) {
		close(shutdownSignal)
	}
	if started.IsSet() {
		// wait for the writer to drain the buffer
		<-writerStopped
	}
}

// TotalWarningLogLines returns the total amount of warning log lines since start.
func TotalWarningLogLines() uint64 {
	return atomic.LoadUint64(&warningLogLines)
}

// TotalErrorLogLines returns the total amount of error log lines since start.
func TotalErrorLogLines() uint64 {
	return atomic.LoadUint64(&errorLogLines)
}

// TotalCriticalLogLines returns the total amount of critical log lines since start.
func TotalCriticalLogLines() uint64 {
	return atomic.LoadUint64(&criticalLogLines)
}

func countLine(level Severity) {
	switch level {
	case WarningLevel:
		atomic.AddUint64(&warningLogLines, 1)
	case ErrorLevel:
		atomic.AddUint64(&errorLogLines, 1)
	case CriticalLevel:
		atomic.AddUint64(&criticalLogLines, 1)
	}
}
