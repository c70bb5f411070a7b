package entropy

import (
	"github.com/noisebase/noisebase/config"
	"github.com/noisebase/noisebase/hwsource"
	"github.com/noisebase/noisebase/log"
	"github.com/noisebase/noisebase/modules"
)

var (
	sourceOption config.StringOption
	diagReports  config.BoolOption
)

func init() {
	modules.Register("entropy", prep, start, stop, "metrics")
}

func prep() error {
	err := config.Register(&config.Option{
		Name:            "Entropy Source",
		Key:             "entropy/source",
		Description:     "Hardware backend serving the noise-mixing entropy source.",
		OptType:         config.OptTypeString,
		DefaultValue:    "sim",
		ValidationRegex: "^[a-z0-9]+$",
	})
	if err != nil {
		return err
	}
	sourceOption = config.GetAsString("entropy/source", "sim")

	err = config.Register(&config.Option{
		Name:         "Diagnostic Fill Reports",
		Key:          "entropy/diag_reports",
		Description:  "Log the length and hex-encoded bytes of every fill. For diagnostics only.",
		OptType:      config.OptTypeBool,
		DefaultValue: false,
	})
	if err != nil {
		return err
	}
	diagReports = config.GetAsBool("entropy/diag_reports", false)

	return nil
}

func start() error {
	s, err := hwsource.Get(sourceOption())
	if err != nil {
		return err
	}
	if err := SetSource(s); err != nil {
		return err
	}

	if diagReports() {
		SetSink(LogSink{})
	}
	return nil
}

func stop() error {
	sourceLock.Lock()
	defer sourceLock.Unlock()

	if active.IsSet() {
		// missing Disable before shutdown is a caller bug, but leaving the
		// analog front end in the noise-mixing state is worse
		log.Warningf("entropy: source %s still enabled at shutdown, disabling", source)
		active.UnSet()
		return source.Disable()
	}
	return nil
}
