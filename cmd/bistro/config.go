package main

import (
	"time"

	"github.com/dmitrymomot/bistro/pkg/httpserver"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	AppName  string `env:"APP_NAME" envDefault:"bistro"`
	LogLevel string `env:"LOG_LEVEL"`

	// RulesFile replaces the built-in rule table with a YAML file.
	RulesFile string `env:"RULES_FILE"`
	// Timezone decides what "today" means for booking dates.
	Timezone               string        `env:"TIMEZONE" envDefault:"Local"`
	FallbackPatternMessage string        `env:"FALLBACK_PATTERN_MESSAGE" envDefault:"Please check this value"`
	ContactNoticeDelay     time.Duration `env:"CONTACT_NOTICE_DELAY" envDefault:"5s"`
	BookingNoticeDelay     time.Duration `env:"BOOKING_NOTICE_DELAY" envDefault:"8s"`

	// Submissions per client ip; a zero rate disables the limit.
	SubmitRate     int           `env:"SUBMIT_RATE" envDefault:"5"`
	SubmitInterval time.Duration `env:"SUBMIT_INTERVAL" envDefault:"1m"`
	SubmitBurst    int           `env:"SUBMIT_BURST" envDefault:"5"`

	HTTP httpserver.Config
}
