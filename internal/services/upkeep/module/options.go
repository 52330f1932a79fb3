package module

import "reduce/internal/platform/config"

// Options holds configuration settings for the upkeep module
type Options struct {
	// HorizonDays hides backlog items due further out, 0 shows all
	HorizonDays int
}

// FromConfig reads CORE_UPKEEP_ settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_UPKEEP_")
	opts := Options{HorizonDays: c.MayInt("HORIZON_DAYS", 0)}
	if opts.HorizonDays < 0 {
		opts.HorizonDays = 0
	}
	return opts
}
