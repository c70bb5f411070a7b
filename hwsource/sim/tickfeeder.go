package sim

import (
	"encoding/binary"
	"time"

	"github.com/noisebase/noisebase/container"
)

const tickDuration = 1 * time.Millisecond

// tickFeeder continuously folds the least significant bit of the current nanosecond unixtime into the generator, mirroring the continuous noise fold of the real hardware path. The more work the program does, the better the quality, as the internal scheduler cannot immediately run the goroutine when it's ready.
func (s *Simulated) tickFeeder(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var value int64
	var pushes int
	var gatheredBits int64
	buf := container.New()

	for {
		select {
		case <-time.After(tickDuration):

			value = (value << 1) | (time.Now().UnixNano() % 2)

			pushes++
			if pushes >= 64 {
				// 64 ticks are credited with 8 bits of entropy
				b := make([]byte, 8)
				binary.LittleEndian.PutUint64(b, uint64(value))
				buf.Append(b)
				gatheredBits += 8
				pushes = 0
			}

			if gatheredBits >= minFeedEntropy() {
				s.lock.Lock()
				if s.gen != nil {
					s.gen.Reseed(buf.CompileData())
				}
				s.lock.Unlock()
				buf = container.New()
				gatheredBits = 0
			}

		case <-stop:
			return
		}
	}
}
