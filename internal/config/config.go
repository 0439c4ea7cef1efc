package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"port"`
	Env             string        `mapstructure:"env"`
	SiteTitle       string        `mapstructure:"siteTitle"`
	ActionDelay     time.Duration `mapstructure:"actionDelay"`
	UploadDelay     time.Duration `mapstructure:"uploadDelay"`
	ReadDelay       time.Duration `mapstructure:"readDelay"`
	ChromePath      string        `mapstructure:"chromePath"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

func (c Config) Production() bool { return c.Env == "production" }

// Load reads configuration from defaults, an optional YAML file and
// PORTFOLIO_* environment variables, in increasing order of precedence.
// An explicit cfgFile must exist; the default ./config.yaml is optional.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", "3000")
	v.SetDefault("env", "development")
	v.SetDefault("siteTitle", "Alex Chen")
	v.SetDefault("actionDelay", 800*time.Millisecond)
	v.SetDefault("uploadDelay", time.Second)
	v.SetDefault("readDelay", time.Duration(0))
	v.SetDefault("chromePath", "")
	v.SetDefault("shutdownTimeout", 10*time.Second)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == "" {
		return Config{}, errors.New("port must not be empty")
	}
	return cfg, nil
}
