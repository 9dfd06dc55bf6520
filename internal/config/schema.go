package config

// Config is the top-level fondctl configuration.
type Config struct {
	Institute InstituteConfig `mapstructure:"institute"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Staff     []string        `mapstructure:"staff"`
}

// InstituteConfig names the institution shown on dashboards and printed
// act documents.
type InstituteConfig struct {
	Name string `mapstructure:"name"`
}

// DefaultsConfig holds paths used by every command.
type DefaultsConfig struct {
	DataDir string `mapstructure:"data_dir"`
	LogFile string `mapstructure:"log_file"`
}

// HasStaff reports whether name is on the configured roster.
func (c *Config) HasStaff(name string) bool {
	for _, s := range c.Staff {
		if s == name {
			return true
		}
	}
	return false
}
