package config

import (
	"fmt"
	"regexp"
	"sync"
)

var (
	optionsLock sync.RWMutex
	options     = make(map[string]*Option)
)

// Register registers a new configuration option. The default value must pass the option's own validation.
func Register(option *Option) error {
	if option.Name == "" {
		return fmt.Errorf("config: option %s has no name", option.Key)
	}
	if option.Key == "" {
		return fmt.Errorf("config: option %s has no key", option.Name)
	}
	if getTypeName(option.OptType) == "unknown" {
		return fmt.Errorf("config: option %s has an unknown type", option.Key)
	}

	if option.ValidationRegex != "" {
		var err error
		option.compiledRegex, err = regexp.Compile(option.ValidationRegex)
		if err != nil {
			return fmt.Errorf("config: invalid validation regex for option %s: %w", option.Key, err)
		}
	}

	if err := validateValue(option, option.DefaultValue); err != nil {
		return fmt.Errorf("config: invalid default value for option %s: %w", option.Key, err)
	}

	optionsLock.Lock()
	defer optionsLock.Unlock()

	if _, ok := options[option.Key]; ok {
		return fmt.Errorf("config: option %s is already registered", option.Key)
	}
	options[option.Key] = option

	return nil
}

func getOption(key string) (*Option, error) {
	optionsLock.RLock()
	defer optionsLock.RUnlock()

	option, ok := options[key]
	if !ok {
		return nil, fmt.Errorf("config: option %s does not exist", key)
	}
	return option, nil
}
