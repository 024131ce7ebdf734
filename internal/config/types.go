package config

// LogFormat selects how log lines are written.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level pulsemart configuration, corresponding to .pulsemart.yml.
type Config struct {
	Server      ServerConfig     `yaml:"server" koanf:"server"`
	Storefront  StorefrontConfig `yaml:"storefront" koanf:"storefront"`
	CatalogFile string           `yaml:"catalog_file" koanf:"catalog_file"`
	OutputDir   string           `yaml:"output_dir" koanf:"output_dir"`
	Log         LogConfig        `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port                  int  `yaml:"port" koanf:"port"`
	AllowAllOrigins       bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeoutSeconds int  `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// StorefrontConfig holds the page copy. Intro is markdown.
type StorefrontConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Heading string `yaml:"heading" koanf:"heading"`
	Intro   string `yaml:"intro" koanf:"intro"`
	Owner   string `yaml:"owner" koanf:"owner"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
