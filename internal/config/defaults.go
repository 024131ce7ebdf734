package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  8080,
			AllowAllOrigins:       false,
			RequestTimeoutSeconds: 60,
		},
		Storefront: StorefrontConfig{
			Title:   "Smart Farming dApp",
			Heading: "Available Pulses",
			Intro:   "Connect directly with farmers and purchase fresh pulses with no intermediaries!",
			Owner:   "Smart Farming dApp",
		},
		OutputDir: "dist",
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
