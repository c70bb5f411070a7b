package entropy

import (
	"github.com/noisebase/noisebase/hexutil"
	"github.com/noisebase/noisebase/log"
)

// Sink receives a diagnostic report for every completed fill.
type Sink interface {
	// ReportFill is called with the filled bytes after every successful fill. The slice must not be retained.
	ReportFill(data []byte)
}

// LogSink reports every fill's length and hex-encoded bytes at debug level.
type LogSink struct{}

// ReportFill implements Sink.
func (LogSink) ReportFill(data []byte) {
	log.Debugf("entropy: filled %d bytes: %s", len(data), hexutil.Encode(data))
}
