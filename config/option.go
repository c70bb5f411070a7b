package config

import (
	"regexp"
	"sync"
)

// Option type IDs.
const (
	OptTypeString uint8 = 1
	OptTypeInt    uint8 = 2
	OptTypeBool   uint8 = 3
)

func getTypeName(t uint8) string {
	switch t {
	case OptTypeString:
		return "string"
	case OptTypeInt:
		return "int"
	case OptTypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Option describes a configuration option.
type Option struct {
	sync.Mutex

	Name            string
	Key             string // category/key
	Description     string
	OptType         uint8
	DefaultValue    interface{}
	ValidationRegex string

	compiledRegex *regexp.Regexp
	activeValue   interface{}
}
