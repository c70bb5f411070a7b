package log

import (
	"fmt"
)

var counter uint16

const maxCount uint16 = 999

func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRAC"
	case DebugLevel:
		return "DEBU"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "ERRO"
	case CriticalLevel:
		return "CRIT"
	default:
		return "NONE"
	}
}

func formatLine(line *logLine) string {
	counter++

	var fLine string
	if line.line == 0 {
		fLine = fmt.Sprintf("%s ? > %s %03d %s", line.timestamp.Format("060102 15:04:05.000"), line.level.String(), counter, line.msg)
	} else {
		fLen := len(line.file)
		fPartStart := fLen - 10
		if fPartStart < 0 {
			fPartStart = 0
		}
		fLine = fmt.Sprintf("%s %s:%03d > %s %03d %s", line.timestamp.Format("060102 15:04:05.000"), line.file[fPartStart:], line.line, line.level.String(), counter, line.msg)
	}

	if counter >= maxCount {
		counter = 0
	}

	return fLine
}
