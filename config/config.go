package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// EnvPrefix namespaces environment overrides, e.g. IMPLANTS_SITE_BASEURL.
const EnvPrefix = "IMPLANTS"

type Config struct {
	Mode   string `mapstructure:"mode"`
	Dotenv string `mapstructure:"dotenv"`
	Server struct {
		HTTPPort     string        `mapstructure:"HTTPPort"`
		Timeout      time.Duration `mapstructure:"HTTPTimeout"`
		ReadTimeout  time.Duration `mapstructure:"ReadTimeout"`
		WriteTimeout time.Duration `mapstructure:"WriteTimeout"`
		IdleTimeout  time.Duration `mapstructure:"IdleTimeout"`
	} `mapstructure:"server"`
	Site struct {
		Name    string `mapstructure:"name"`
		BaseURL string `mapstructure:"baseURL"`
		Phone   string `mapstructure:"phone"`
		Email   string `mapstructure:"email"`
	} `mapstructure:"site"`
	Handlers struct {
		Prometheus struct {
			Port    string `mapstructure:"port"`
			Enabled bool   `mapstructure:"enabled"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
	Lead struct {
		SubmitDelay time.Duration `mapstructure:"submitDelay"`
		RateLimit   int           `mapstructure:"rateLimit"`
		RateWindow  time.Duration `mapstructure:"rateWindow"`
	} `mapstructure:"lead"`
	Cache struct {
		TTL     time.Duration `mapstructure:"ttl"`
		Cleanup time.Duration `mapstructure:"cleanup"`
	} `mapstructure:"cache"`
	Build struct {
		OutputDir string `mapstructure:"outputDir"`
		Workers   int    `mapstructure:"workers"`
	} `mapstructure:"build"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Mode == "" || c.Mode == "development"
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err = config.validate(); err != nil {
		return Config{}, err
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

func (c Config) validate() error {
	switch {
	case c.Server.HTTPPort == "":
		return fmt.Errorf("invalid config: server.HTTPPort is required")
	case c.Site.BaseURL == "":
		return fmt.Errorf("invalid config: site.baseURL is required")
	case c.Build.Workers < 1:
		return fmt.Errorf("invalid config: build.workers must be positive, got %d", c.Build.Workers)
	case c.Lead.SubmitDelay < 0:
		return fmt.Errorf("invalid config: lead.submitDelay must not be negative")
	}
	return nil
}
