// Package sim provides a software stand-in for the hardware noise-mixing entropy source. It feeds a Fortuna generator from the OS and from scheduling jitter, so the lifecycle manager can run and be tested on hosts without the real registers.
package sim

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/aead/serpent"
	"github.com/seehuhn/fortuna"
	"github.com/tevino/abool"

	"github.com/noisebase/noisebase/config"
	"github.com/noisebase/noisebase/hwsource"
)

const seedSize = 32

var (
	cipherOption   config.StringOption
	minFeedEntropy config.IntOption
)

func init() {
	err := config.Register(&config.Option{
		Name:            "Simulated Source Cipher",
		Key:             "entropy/sim_cipher",
		Description:     "Cipher to use for the simulated source's Fortuna generator.",
		OptType:         config.OptTypeString,
		DefaultValue:    "aes",
		ValidationRegex: "^(aes|serpent)$",
	})
	if err != nil {
		panic(err)
	}
	cipherOption = config.GetAsString("entropy/sim_cipher", "aes")

	err = config.Register(&config.Option{
		Name:            "Minimum Feed Entropy",
		Key:             "entropy/sim_min_feed_entropy",
		Description:     "The minimum amount of gathered entropy before the tick feeder reseeds the generator, in bits.",
		OptType:         config.OptTypeInt,
		DefaultValue:    256,
		ValidationRegex: "^[0-9]{1,5}$",
	})
	if err != nil {
		panic(err)
	}
	minFeedEntropy = config.GetAsInt("entropy/sim_min_feed_entropy", 256)

	hwsource.Register("sim", New())
}

// Simulated implements hwsource.Source with a Fortuna generator instead of noise-source registers.
type Simulated struct {
	lock sync.Mutex

	gen    *fortuna.Generator
	active *abool.AtomicBool

	stopFeeder chan struct{}
	feederDone chan struct{}
}

// New returns a new, disabled simulated source.
func New() *Simulated {
	return &Simulated{
		active: abool.NewBool(false),
	}
}

func newCipher(key []byte) (cipher.Block, error) {
	c := cipherOption()
	switch c {
	case "aes":
		return aes.NewCipher(key)
	case "serpent":
		return serpent.NewCipher(key)
	default:
		return nil, fmt.Errorf("unknown or unsupported cipher: %s", c)
	}
}

// Enable seeds a fresh generator from the OS and starts the tick feeder.
func (s *Simulated) Enable() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.active.IsSet() {
		return errors.New("sim: source already enabled")
	}

	seed := make([]byte, seedSize)
	if _, err := rand.Read(seed); err != nil {
		return fmt.Errorf("sim: failed to read seed from os: %w", err)
	}

	s.gen = fortuna.NewGenerator(newCipher)
	s.gen.Reseed(seed)

	s.stopFeeder = make(chan struct{})
	s.feederDone = make(chan struct{})
	go s.tickFeeder(s.stopFeeder, s.feederDone)

	s.active.Set()
	return nil
}

// ReadBytes fills b from the generator.
func (s *Simulated) ReadBytes(b []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.active.IsSet() {
		return hwsource.ErrSourceInactive
	}

	copy(b, s.gen.PseudoRandomData(uint(len(b))))
	return nil
}

// Disable stops the tick feeder and drops the generator.
func (s *Simulated) Disable() error {
	s.lock.Lock()
	if !s.active.IsSet() {
		s.lock.Unlock()
		return hwsource.ErrSourceInactive
	}
	close(s.stopFeeder)
	s.lock.Unlock()

	<-s.feederDone

	s.lock.Lock()
	s.gen = nil
	s.active.UnSet()
	s.lock.Unlock()
	return nil
}

func (s *Simulated) String() string {
	return "sim"
}
