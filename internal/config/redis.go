package config

// RedisConfig holds the connection settings for the payment event
// publisher. Leaving Addr empty disables event publishing.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}
