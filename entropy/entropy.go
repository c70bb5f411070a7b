// Package entropy owns the enable/disable lifecycle of the hardware noise-mixing entropy source and serves random byte fills while the source is active.
//
// The noise path shares the analog front end with the ADC and the Wi-Fi/Bluetooth radio, and the hardware enforces no isolation between them. The source must therefore never be enabled while a radio or ADC subsystem is initialized or in use, and must be disabled again before any of them is brought up. This package cannot observe those subsystems itself; the surrounding application has to sequence bring-up around Enable/Disable. Where the platform can query radio/ADC activation state, install that check with SetGuard to turn the contract into a runtime assertion.
//
// Violating a precondition is a programming error, not a recoverable condition: the functions fail fast and log at critical level, because silently proceeding could mean handing out predictable bytes while the caller believes they are random.
package entropy

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tevino/abool"

	"github.com/noisebase/noisebase/hwsource"
	"github.com/noisebase/noisebase/log"
	"github.com/noisebase/noisebase/metrics"
)

// Precondition violations.
var (
	ErrAlreadyEnabled = errors.New("entropy: source is already enabled")
	ErrNotEnabled     = errors.New("entropy: source is not enabled")
	ErrShortBuffer    = errors.New("entropy: buffer too small for requested length")
	ErrNegativeLength = errors.New("entropy: negative length")
	ErrNoSource       = errors.New("entropy: no hardware source configured")
)

var (
	// sourceLock makes enable, fill and disable one critical section: the noise-mixing hardware is a single shared physical resource.
	sourceLock sync.Mutex
	source     hwsource.Source
	active     = abool.NewBool(false)

	guard func() error
	sink  Sink

	enablesTotal = metrics.NewCounter("entropy_enables_total")
	fillsTotal   = metrics.NewCounter("entropy_fills_total")
	bytesTotal   = metrics.NewCounter("entropy_bytes_total")
)

// Enable configures the noise source to continuously mix sampled noise into the hardware random pool. It fails fast if the source is already enabled or if the installed guard rejects activation. No radio or ADC subsystem may be initialized or used until the matching Disable.
func Enable() error {
	sourceLock.Lock()
	defer sourceLock.Unlock()

	if active.IsSet() {
		log.Critical("entropy: Enable called on an already enabled source")
		return ErrAlreadyEnabled
	}
	if source == nil {
		return ErrNoSource
	}
	if guard != nil {
		if err := guard(); err != nil {
			log.Criticalf("entropy: subsystem guard rejected enable: %s", err)
			return fmt.Errorf("entropy: subsystem guard rejected enable: %w", err)
		}
	}

	if err := source.Enable(); err != nil {
		return fmt.Errorf("entropy: failed to enable %s: %w", source, err)
	}

	active.Set()
	enablesTotal.Inc()
	log.Debugf("entropy: %s enabled", source)
	return nil
}

// Fill fills the whole buffer with bytes drawn from the hardware random pool. There is no partial fill: either the buffer is fully populated or an error is returned. Valid only while enabled.
func Fill(buf []byte) error {
	sourceLock.Lock()
	defer sourceLock.Unlock()

	return fill(buf)
}

// FillN fills the first n bytes of the buffer. It fails fast when n is negative or exceeds the buffer's length.
func FillN(buf []byte, n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if n > len(buf) {
		return ErrShortBuffer
	}

	sourceLock.Lock()
	defer sourceLock.Unlock()

	return fill(buf[:n])
}

// Bytes allocates a new byte slice of the given length and fills it.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	sourceLock.Lock()
	defer sourceLock.Unlock()

	buf := make([]byte, n)
	if err := fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func fill(buf []byte) error {
	if !active.IsSet() {
		log.Critical("entropy: fill requested while source is disabled")
		return ErrNotEnabled
	}

	if err := source.ReadBytes(buf); err != nil {
		return fmt.Errorf("entropy: failed to read from %s: %w", source, err)
	}

	fillsTotal.Inc()
	bytesTotal.Add(len(buf))
	if sink != nil {
		sink.ReportFill(buf)
	}
	return nil
}

// Disable deconfigures the noise-mixing path and restores the analog front end to a state safe for ADC/radio initialization. It must be called before any radio or ADC subsystem is brought up.
func Disable() error {
	sourceLock.Lock()
	defer sourceLock.Unlock()

	if !active.IsSet() {
		log.Critical("entropy: Disable called on an already disabled source")
		return ErrNotEnabled
	}

	if err := source.Disable(); err != nil {
		return fmt.Errorf("entropy: failed to disable %s: %w", source, err)
	}

	active.UnSet()
	log.Debugf("entropy: %s disabled", source)
	return nil
}

// Active returns whether the entropy source is currently enabled.
func Active() bool {
	return active.IsSet()
}

// SetSource sets the hardware backend. The source must be disabled.
func SetSource(s hwsource.Source) error {
	sourceLock.Lock()
	defer sourceLock.Unlock()

	if active.IsSet() {
		return ErrAlreadyEnabled
	}
	source = s
	return nil
}

// SetGuard installs a check that Enable runs before touching the hardware. Platforms that can query radio/ADC activation state should reject activation here. Pass nil to remove.
func SetGuard(fn func() error) {
	sourceLock.Lock()
	defer sourceLock.Unlock()
	guard = fn
}

// SetSink installs a diagnostic sink that receives every completed fill. Pass nil to remove. The sink is called with the fill still holding the source's critical section and must not call back into this package.
func SetSink(s Sink) {
	sourceLock.Lock()
	defer sourceLock.Unlock()
	sink = s
}
