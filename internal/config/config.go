package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host          string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port          string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout   int           `envconfig:"SERVER_TIMEOUT" default:"10"`
	SearchTimeout time.Duration `envconfig:"SEARCH_TIMEOUT" default:"10s"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Redis struct {
	Enabled    bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host       string `envconfig:"REDIS_HOST" default:"localhost"`
	Port       string `envconfig:"REDIS_PORT" default:"6379"`
	DB         int    `envconfig:"REDIS_DB" default:"0"`
	TTLMinutes int    `envconfig:"REDIS_TTL_MINUTES" default:"10"`
}

type Effects struct {
	MaxShootingStars   int           `envconfig:"EFFECTS_MAX_SHOOTING_STARS" default:"0"`
	CancelStarsOnClear bool          `envconfig:"EFFECTS_CANCEL_STARS_ON_CLEAR" default:"false"`
	StarLifetime       time.Duration `envconfig:"SHOOTING_STAR_LIFETIME" default:"2s"`
}

type Config struct {
	OpenWeatherMapAPIKey string `envconfig:"OPEN_WEATHER_MAP_API_KEY" required:"true"`
	OpenWeatherMapURL    string `envconfig:"OPEN_WEATHER_MAP_URL" default:"https://api.openweathermap.org/data/2.5"`
	IconBaseURL          string `envconfig:"ICON_BASE_URL" default:"https://openweathermap.org/img/wn"`

	Server  Server
	Breaker Breaker
	Redis   Redis
	Effects Effects

	AudioAssetsDir  string `envconfig:"AUDIO_ASSETS_DIR" default:"effects"`
	DisplayTimezone string `envconfig:"DISPLAY_TIMEZONE" default:"Local"`
	StaticDir       string `envconfig:"STATIC_DIR"`

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/skyweather.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/skyweather-http.log"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (r Redis) Address() string {
	return r.Host + ":" + r.Port
}

func (r Redis) TTL() time.Duration {
	return time.Duration(r.TTLMinutes) * time.Minute
}

// Location resolves DISPLAY_TIMEZONE, used for sunrise and sunset.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("display timezone %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}
