package config

// Overrides holds command line flags that take precedence over the config
// file and the environment. Empty strings and nil pointers mean "not set".
type Overrides struct {
	SavesDir    string
	CurrentSave string
	Debug       *bool
	Theme       string
}

// Merge applies o on top of cfg, returning a new Config without mutating cfg.
// Paths are validated and expanded the same way as file values.
func Merge(cfg *Config, o Overrides) (*Config, error) {
	merged := *cfg
	merged.Game.Command = append([]string(nil), cfg.Game.Command...)

	if o.SavesDir != "" {
		merged.SavesDir = o.SavesDir
	}
	if o.CurrentSave != "" {
		merged.CurrentSave = o.CurrentSave
	}
	if o.Debug != nil {
		merged.Debug = *o.Debug
	}
	if o.Theme != "" {
		merged.Theme.Name = o.Theme
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	var err error
	if merged.SavesDir, err = expandPath(merged.SavesDir); err != nil {
		return nil, err
	}
	if merged.CurrentSave, err = expandPath(merged.CurrentSave); err != nil {
		return nil, err
	}
	return &merged, nil
}
