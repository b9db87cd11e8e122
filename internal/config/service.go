package config

// ServiceConfig holds service-level settings.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
	ClientURL   string `yaml:"client_url"`
}

// JWTConfig holds the settings for validating caller tokens.
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// LogConfig controls the zap logger construction.
type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	FilePath    string `yaml:"file_path"`
	Development bool   `yaml:"development"`
}
