package config

import (
	"sync"
	"testing"
)

var registerTestOptionsOnce sync.Once

func registerTestOptions(t *testing.T) {
	t.Helper()
	registerTestOptionsOnce.Do(func() { doRegisterTestOptions(t) })
}

func doRegisterTestOptions(t *testing.T) {
	t.Helper()

	options := []*Option{
		{
			Name:            "Monkey Name",
			Key:             "monkey/name",
			Description:     "The monkey's name.",
			OptType:         OptTypeString,
			DefaultValue:    "banana",
			ValidationRegex: "^[a-z]+$",
		},
		{
			Name:            "Monkey Limit",
			Key:             "monkey/limit",
			Description:     "How many monkeys.",
			OptType:         OptTypeInt,
			DefaultValue:    2,
			ValidationRegex: "^[0-9]{1,4}$",
		},
		{
			Name:         "Monkey Business",
			Key:          "monkey/business",
			Description:  "Whether monkeys do business.",
			OptType:      OptTypeBool,
			DefaultValue: false,
		},
	}

	for _, option := range options {
		err := Register(option)
		if err != nil {
			t.Fatalf("failed to register option %s: %s", option.Key, err)
		}
	}
}

func TestGet(t *testing.T) {
	registerTestOptions(t)

	name := GetAsString("monkey/name", "fallback")
	if name() != "banana" {
		t.Errorf("expected default value, got %s", name())
	}

	if err := SetConfigOption("monkey/name", "george"); err != nil {
		t.Fatalf("failed to set option: %s", err)
	}
	if name() != "george" {
		t.Errorf("expected new value, got %s", name())
	}

	limit := GetAsInt("monkey/limit", 99)
	if limit() != 2 {
		t.Errorf("expected default value, got %d", limit())
	}
	if err := SetConfigOption("monkey/limit", 12); err != nil {
		t.Fatalf("failed to set option: %s", err)
	}
	if limit() != 12 {
		t.Errorf("expected new value, got %d", limit())
	}

	business := GetAsBool("monkey/business", true)
	if business() {
		t.Error("expected default value false")
	}

	// fallback for unregistered keys
	missing := GetAsString("monkey/missing", "fallback")
	if missing() != "fallback" {
		t.Errorf("expected fallback value, got %s", missing())
	}
}

func TestSetValidation(t *testing.T) {
	registerTestOptions(t)

	if err := SetConfigOption("monkey/name", "UPPERCASE"); err == nil {
		t.Error("value violating the validation regex must be rejected")
	}
	if err := SetConfigOption("monkey/name", 42); err == nil {
		t.Error("value of wrong type must be rejected")
	}
	if err := SetConfigOption("monkey/limit", 99999); err == nil {
		t.Error("value violating the validation regex must be rejected")
	}
	if err := SetConfigOption("monkey/unknown", "x"); err == nil {
		t.Error("setting an unregistered option must fail")
	}

	if err := ResetConfigOption("monkey/name"); err != nil {
		t.Fatalf("failed to reset option: %s", err)
	}
	name := GetAsString("monkey/name", "fallback")
	if name() != "banana" {
		t.Errorf("expected default value after reset, got %s", name())
	}
}
