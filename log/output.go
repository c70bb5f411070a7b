package log

import (
	"fmt"
	"time"
)

func writeLine(line *logLine) {
	fmt.Println(formatLine(line))
}

func writer() {
	defer close(writerStopped)

	for {

		// wait until logs need to be processed
		select {
		case <-logsWaiting:
			logsWaitingFlag.UnSet()
		case <-forceEmptyingOfBuffer:
		case <-shutdownSignal:
			// flush and exit
			for {
				select {
				case line := <-logBuffer:
					writeLine(line)
				case <-time.After(10 * time.Millisecond):
					writeLine(&logLine{
						msg:       "===== LOGGING STOPPED =====",
						level:     WarningLevel,
						timestamp: time.Now(),
					})
					return
				}
			}
		}

		// write all waiting logs
	writeLoop:
		for {
			select {
			case line := <-logBuffer:
				writeLine(line)
			default:
				break writeLoop
			}
		}

	}
}
