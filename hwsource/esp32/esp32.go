//go:build esp32

// Package esp32 binds the hwsource.Source interface to the ESP32's SAR-ADC-based noise path. While enabled, sampled analog noise is continuously mixed into the hardware random pool behind the RNG data register.
//
// Enabling reconfigures the analog front end shared with ADC channel reads and radio power-up sequencing. See the entropy package for the caller contract.
package esp32

import (
	"runtime/volatile"
	"time"
	"unsafe"

	"github.com/noisebase/noisebase/hwsource"
)

// Register addresses, see the ESP32 technical reference manual.
const (
	wdevRandRegAddr        = 0x3FF75144 // hardware random pool output
	sensSARMeasWait2Addr   = 0x3FF48824 // SAR power control
	sensSARReadCtrlRegAddr = 0x3FF48800 // SAR1 sample control
)

// SENS_SAR_MEAS_WAIT2 bits.
const (
	forceXPDSARMask = 0x3 << 18 // SENS_FORCE_XPD_SAR
	forceXPDSAROn   = 0x3 << 18 // keep the SAR ADC powered
)

// Pool refill pacing: one 32-bit word is fully remixed roughly every 16µs at the default sampling rate. Reading faster than that degrades output quality.
const wordDelay = 20 * time.Microsecond

var (
	wdevRandReg     = (*volatile.Register32)(unsafe.Pointer(uintptr(wdevRandRegAddr)))
	sarMeasWait2Reg = (*volatile.Register32)(unsafe.Pointer(uintptr(sensSARMeasWait2Addr)))
)

func init() {
	hwsource.Register("esp32", &source{})
}

type source struct {
	savedMeasWait2 uint32
	active         bool
}

// Enable powers the SAR ADC and routes its noise into the random pool.
func (s *source) Enable() error {
	s.savedMeasWait2 = sarMeasWait2Reg.Get()
	sarMeasWait2Reg.Set(s.savedMeasWait2&^uint32(forceXPDSARMask) | forceXPDSAROn)
	s.active = true
	return nil
}

// ReadBytes drains words from the random pool, paced to the refill rate.
func (s *source) ReadBytes(b []byte) error {
	if !s.active {
		return hwsource.ErrSourceInactive
	}

	for i := 0; i < len(b); i += 4 {
		time.Sleep(wordDelay)
		word := wdevRandReg.Get()
		for j := 0; j < 4 && i+j < len(b); j++ {
			b[i+j] = byte(word >> (8 * j))
		}
	}
	return nil
}

// Disable restores the analog front end for ADC/radio use.
func (s *source) Disable() error {
	if !s.active {
		return hwsource.ErrSourceInactive
	}
	sarMeasWait2Reg.Set(s.savedMeasWait2)
	s.active = false
	return nil
}

func (s *source) String() string {
	return "esp32"
}
