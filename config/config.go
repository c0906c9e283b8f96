package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angas/elpris-go/logging"
	"github.com/angas/elpris-go/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderElPrisetJustNu = "elprisetjustnu"
	ProviderNordpool       = "nordpool"
)

type AppConfigPriceApi struct {
	// "elprisetjustnu" (default) or "nordpool"
	Provider string `mapstructure:"provider"`
	// Overrides the provider's public endpoint, empty means default
	BaseUrl        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (a AppConfigPriceApi) GetTimeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type AppConfigGui struct {
	Area string `mapstructure:"area"` // "SE1", "SE2", "SE3", "SE4"
	// Timezone for the "last updated" time, price intervals are always shown in Swedish time
	Timezone string `mapstructure:"timezone"`
	// Cron spec for re-evaluating the current price
	RefreshAt string `mapstructure:"refresh_at"`
	Chart     bool   `mapstructure:"chart"`
}

func (g AppConfigGui) GetArea() types.Area {
	area, err := types.ParseArea(g.Area)
	if err != nil {
		return types.DefaultArea
	}
	return area
}

type AppConfigWidget struct {
	Name string `mapstructure:"name"` // Widget shown in the preview
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
	// Min log level for the log file, default: "INFO"
	FileLevel *string `mapstructure:"file_level"`
	// The terminal UI only logs to this file, no file means no logging while the UI runs
	File string `mapstructure:"file"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

func (l AppConfigLogging) GetFileLevel() slog.Level {
	return logging.LevelFromString(l.FileLevel)
}

type AppConfig struct {
	PriceApi AppConfigPriceApi `mapstructure:"price_api"`
	Gui      AppConfigGui      `mapstructure:"gui"`
	Widget   AppConfigWidget   `mapstructure:"widget"`
	Logging  AppConfigLogging  `mapstructure:"logging"`
}

func (c *AppConfig) Validate() error {
	if _, err := types.ParseArea(c.Gui.Area); err != nil {
		return fmt.Errorf("gui.area: %w", err)
	}
	switch c.PriceApi.Provider {
	case ProviderElPrisetJustNu, ProviderNordpool:
	default:
		return fmt.Errorf("price_api.provider: unknown provider %q", c.PriceApi.Provider)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("price_api.provider", ProviderElPrisetJustNu)
	v.SetDefault("price_api.base_url", "")
	v.SetDefault("price_api.timeout_seconds", 10)
	v.SetDefault("gui.area", string(types.DefaultArea))
	v.SetDefault("gui.timezone", "Europe/Stockholm")
	v.SetDefault("gui.refresh_at", "*/15 * * * *")
	v.SetDefault("gui.chart", true)
	v.SetDefault("widget.name", "Elpris")
	v.SetDefault("logging.console_level", "INFO")
	v.SetDefault("logging.file_level", "INFO")
	v.SetDefault("logging.file", "")
}

// Load reads the config file at path. Without a path config/config.yaml is
// used if it exists, otherwise defaults apply. Environment variables prefixed
// with ELPRIS_ override the file, e.g. ELPRIS_GUI_AREA=SE1, a .env file in the
// working directory is loaded first.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("ELPRIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var c AppConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}
	c.PriceApi.Provider = strings.ToLower(strings.TrimSpace(c.PriceApi.Provider))

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &c, nil
}
