package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. LITIOS_DATABASE_DSN.
const EnvPrefix = "LITIOS"

// DefaultPort is used when neither PORT nor the config file set one.
const DefaultPort = "8080"

// RestConfig holds the settings of the REST application
type RestConfig struct {
	Port       string             `mapstructure:"port" validate:"required,numeric"`
	StaticDir  string             `mapstructure:"static_dir" validate:"required"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	OpenRouter OpenRouterSettings `mapstructure:"openrouter"`
}

// Validate checks every nested settings block, then the top level fields.
// Nested blocks go first so their errors name the block.
func (c *RestConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.OpenRouter.Validate(); err != nil {
		return err
	}

	return validateSettings("RestConfig", c)
}

// InitializeRestConfig loads the REST configuration. The file at path is optional;
// defaults apply for everything it does not set and the environment overrides both.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Container platforms inject a bare PORT.
	if err := v.BindEnv("port", "PORT", EnvPrefix+"_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("static_dir", "./web")

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "data/litios.db")
	v.SetDefault("database.name", "")

	logger := DefaultLoggerSettings()
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", logger.FilePath)
	v.SetDefault("logger.max_size", logger.MaxSize)
	v.SetDefault("logger.max_backups", logger.MaxBackups)
	v.SetDefault("logger.max_age", logger.MaxAge)

	v.SetDefault("openrouter.base_url", DefaultOpenRouterBaseURL)
	v.SetDefault("openrouter.default_model", DefaultOpenRouterModel)
	v.SetDefault("openrouter.timeout", DefaultOpenRouterTimeout)
	v.SetDefault("openrouter.max_retries", 2)
	v.SetDefault("openrouter.site_url", "")
	v.SetDefault("openrouter.site_name", "LITI")
}
