package config

import "null-hydrator/options"

// CurrentVersion is the only supported file version.
const CurrentVersion = "1"

// Config is the root structure of a hydration settings file.
type Config struct {
	Version   string   `yaml:"version"`
	Policy    *Policy  `yaml:"policy,omitempty"`
	Skip      []string `yaml:"skip,omitempty"`       // "pkg.Type.Field" entries
	FixedTime string   `yaml:"fixed_time,omitempty"` // RFC 3339; the system clock when empty
	LogLevel  string   `yaml:"log_level,omitempty"`  // debug, info, warn or error
}

// Policy holds one switch per options.PolicyEnum flag. A nil switch keeps
// the default.
type Policy struct {
	DescendPresent  *bool `yaml:"descend_present,omitempty"`
	DescendElements *bool `yaml:"descend_elements,omitempty"`
	LeaveCycles     *bool `yaml:"leave_cycles,omitempty"`
	SkipUnsupported *bool `yaml:"skip_unsupported,omitempty"`
	UTC             *bool `yaml:"utc,omitempty"`
}

func (p *Policy) switches() []struct {
	flag options.PolicyEnum
	on   **bool
} {
	return []struct {
		flag options.PolicyEnum
		on   **bool
	}{
		{options.PolicyDescendPresent, &p.DescendPresent},
		{options.PolicyDescendElements, &p.DescendElements},
		{options.PolicyLeaveCycles, &p.LeaveCycles},
		{options.PolicySkipUnsupported, &p.SkipUnsupported},
		{options.PolicyUTC, &p.UTC},
	}
}

// Enum returns options.PolicyDefault with every set switch applied.
func (p *Policy) Enum() options.PolicyEnum {
	policy := options.PolicyDefault
	if p == nil {
		return policy
	}

	for _, sw := range p.switches() {
		if *sw.on != nil {
			policy = policy.With(sw.flag, **sw.on)
		}
	}

	return policy
}

// PolicyFrom returns a Policy with every switch set from policy.
func PolicyFrom(policy options.PolicyEnum) *Policy {
	p := &Policy{}
	for _, sw := range p.switches() {
		on := policy.Has(sw.flag)
		*sw.on = &on
	}

	return p
}

// Default returns a fully spelled-out configuration for options.PolicyDefault.
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		Policy:   PolicyFrom(options.PolicyDefault),
		LogLevel: "info",
	}
}
