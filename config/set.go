package config

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/tevino/abool"
)

// ErrInvalidOptionType is returned when a value does not match the option's registered type.
var ErrInvalidOptionType = errors.New("invalid option value type")

var (
	validityFlag     = abool.NewBool(true)
	validityFlagLock sync.RWMutex
)

// getValidityFlag returns a flag that signifies if the configuration has been changed. This flag must not be changed, only read.
func getValidityFlag() *abool.AtomicBool {
	validityFlagLock.RLock()
	defer validityFlagLock.RUnlock()
	return validityFlag
}

// signalChanges marks the config's validityFlag as dirty, invalidating all getter caches.
func signalChanges() {
	validityFlagLock.Lock()
	validityFlag.SetTo(false)
	validityFlag = abool.NewBool(true)
	validityFlagLock.Unlock()
}

// validateValue checks that a value is of the option's type and passes the option's validation regex.
func validateValue(option *Option, value interface{}) error {
	var stringRepr string

	switch v := value.(type) {
	case string:
		if option.OptType != OptTypeString {
			return fmt.Errorf("%w: expected %s for %s", ErrInvalidOptionType, getTypeName(option.OptType), option.Key)
		}
		stringRepr = v
	case int:
		if option.OptType != OptTypeInt {
			return fmt.Errorf("%w: expected %s for %s", ErrInvalidOptionType, getTypeName(option.OptType), option.Key)
		}
		stringRepr = strconv.Itoa(v)
	case int64:
		if option.OptType != OptTypeInt {
			return fmt.Errorf("%w: expected %s for %s", ErrInvalidOptionType, getTypeName(option.OptType), option.Key)
		}
		stringRepr = strconv.FormatInt(v, 10)
	case bool:
		if option.OptType != OptTypeBool {
			return fmt.Errorf("%w: expected %s for %s", ErrInvalidOptionType, getTypeName(option.OptType), option.Key)
		}
		stringRepr = strconv.FormatBool(v)
	default:
		return fmt.Errorf("%w: unsupported value for %s", ErrInvalidOptionType, option.Key)
	}

	if option.compiledRegex != nil && !option.compiledRegex.MatchString(stringRepr) {
		return fmt.Errorf("config: value %q for option %s did not pass validation", stringRepr, option.Key)
	}

	return nil
}

// SetConfigOption sets a single value in the config.
func SetConfigOption(key string, value interface{}) error {
	option, err := getOption(key)
	if err != nil {
		return err
	}

	if err := validateValue(option, value); err != nil {
		return err
	}

	option.Lock()
	// normalize ints to int64
	if v, ok := value.(int); ok {
		value = int64(v)
	}
	option.activeValue = value
	option.Unlock()

	signalChanges()
	return nil
}

// ResetConfigOption resets a single value in the config to its default.
func ResetConfigOption(key string) error {
	option, err := getOption(key)
	if err != nil {
		return err
	}

	option.Lock()
	option.activeValue = nil
	option.Unlock()

	signalChanges()
	return nil
}
